package cleaning

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind      = errors.New("invalid cleaning kind")
	ErrEmptyPerformedBy = errors.New("performed-by cannot be empty")
)

type Kind string

const (
	KindRoutine  Kind = "routine"
	KindCheckout Kind = "checkout"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindRoutine, KindCheckout:
		return true
	default:
		return false
	}
}

// Record of one cleaning pass over a room, optionally tied to the reservation
// whose check-out triggered it. Append-only.
type Record struct {
	id            uuid.UUID
	roomID        uuid.UUID
	reservationID *uuid.UUID
	kind          Kind
	notes         string
	performedBy   string
	performedAt   time.Time
}

func NewRecord(roomID uuid.UUID, reservationID *uuid.UUID, kind Kind, notes, performedBy string, now time.Time) (*Record, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	performedBy = strings.TrimSpace(performedBy)
	if performedBy == "" {
		return nil, ErrEmptyPerformedBy
	}

	return &Record{
		id:            uuid.New(),
		roomID:        roomID,
		reservationID: reservationID,
		kind:          kind,
		notes:         strings.TrimSpace(notes),
		performedBy:   performedBy,
		performedAt:   now,
	}, nil
}

func ReconstructRecord(id, roomID uuid.UUID, reservationID *uuid.UUID, kind Kind, notes, performedBy string, performedAt time.Time) *Record {
	return &Record{
		id:            id,
		roomID:        roomID,
		reservationID: reservationID,
		kind:          kind,
		notes:         notes,
		performedBy:   performedBy,
		performedAt:   performedAt,
	}
}

func (r *Record) ID() uuid.UUID             { return r.id }
func (r *Record) RoomID() uuid.UUID         { return r.roomID }
func (r *Record) ReservationID() *uuid.UUID { return r.reservationID }
func (r *Record) Kind() Kind                { return r.kind }
func (r *Record) Notes() string             { return r.notes }
func (r *Record) PerformedBy() string       { return r.performedBy }
func (r *Record) PerformedAt() time.Time    { return r.performedAt }
