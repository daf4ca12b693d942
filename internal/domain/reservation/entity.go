package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidHeadcount     = errors.New("headcount must be at least one")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrNegativeRate         = errors.New("nightly rate cannot be negative")
	ErrNotCheckedIn         = errors.New("reservation has not been checked in")
	ErrAlreadyCheckedOut    = errors.New("reservation is already checked out")
	ErrAlreadyCanceled      = errors.New("reservation is already canceled")
	ErrEmptyCancelReason    = errors.New("cancellation reason cannot be empty")
)

// RoomSpec is the slice of room state the reservation needs at creation time.
// The nightly rate is snapshotted from it and never re-read afterwards.
type RoomSpec struct {
	ID             uuid.UUID
	BasePriceCents int64
}

type Reservation struct {
	id                uuid.UUID
	roomID            uuid.UUID
	primaryGuestID    uuid.UUID
	secondaryGuestIDs []uuid.UUID
	stay              StayPeriod
	status            Status
	nightlyRate       Money
	headcount         int
	paymentMethod     PaymentMethod
	checkedInAt       *time.Time
	checkedOutAt      *time.Time
	canceledAt        *time.Time
	cancelReason      string
	canceledBy        *uuid.UUID
	createdAt         time.Time
}

func NewReservation(
	room RoomSpec,
	primaryGuestID uuid.UUID,
	secondaryGuestIDs []uuid.UUID,
	stay StayPeriod,
	headcount int,
	payment PaymentMethod,
	now time.Time,
) (*Reservation, error) {
	if headcount < 1 {
		return nil, ErrInvalidHeadcount
	}
	if !payment.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if room.BasePriceCents < 0 {
		return nil, ErrNegativeRate
	}

	return &Reservation{
		id:                uuid.New(),
		roomID:            room.ID,
		primaryGuestID:    primaryGuestID,
		secondaryGuestIDs: append([]uuid.UUID(nil), secondaryGuestIDs...),
		stay:              stay,
		status:            StatusPending,
		nightlyRate:       NewMoney(room.BasePriceCents),
		headcount:         headcount,
		paymentMethod:     payment,
		createdAt:         now,
	}, nil
}

func ReconstructReservation(
	id, roomID, primaryGuestID uuid.UUID,
	secondaryGuestIDs []uuid.UUID,
	stay StayPeriod,
	status Status,
	nightlyRate Money,
	headcount int,
	payment PaymentMethod,
	checkedInAt, checkedOutAt, canceledAt *time.Time,
	cancelReason string,
	canceledBy *uuid.UUID,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:                id,
		roomID:            roomID,
		primaryGuestID:    primaryGuestID,
		secondaryGuestIDs: secondaryGuestIDs,
		stay:              stay,
		status:            status,
		nightlyRate:       nightlyRate,
		headcount:         headcount,
		paymentMethod:     payment,
		checkedInAt:       checkedInAt,
		checkedOutAt:      checkedOutAt,
		canceledAt:        canceledAt,
		cancelReason:      cancelReason,
		canceledBy:        canceledBy,
		createdAt:         createdAt,
	}
}

// CheckIn records the actual arrival. A second call is a no-op rather than an
// error, so the front desk can re-submit without consequence; the returned
// bool reports whether anything changed.
func (r *Reservation) CheckIn(now time.Time) (bool, error) {
	switch r.status {
	case StatusCanceled:
		return false, ErrAlreadyCanceled
	case StatusCheckedOut:
		return false, ErrAlreadyCheckedOut
	case StatusCheckedIn:
		return false, nil
	}

	t := now
	r.checkedInAt = &t
	r.status = StatusCheckedIn
	return true, nil
}

func (r *Reservation) CheckOut(now time.Time) error {
	switch r.status {
	case StatusCanceled:
		return ErrAlreadyCanceled
	case StatusCheckedOut:
		return ErrAlreadyCheckedOut
	case StatusPending:
		return ErrNotCheckedIn
	}

	t := now
	r.checkedOutAt = &t
	r.status = StatusCheckedOut
	return nil
}

func (r *Reservation) Cancel(reason string, actorID uuid.UUID, now time.Time) error {
	if r.status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	if r.status == StatusCheckedOut {
		return ErrAlreadyCheckedOut
	}
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyCancelReason
	}

	t := now
	actor := actorID
	r.canceledAt = &t
	r.cancelReason = strings.TrimSpace(reason)
	r.canceledBy = &actor
	r.status = StatusCanceled
	return nil
}

// SpansNow reports whether the effective stay interval contains the given
// instant, i.e. whether this reservation should count the room as occupied.
func (r *Reservation) SpansNow(now time.Time) bool {
	return r.status.IsActive() && r.stay.Contains(now)
}

func (r *Reservation) ID() uuid.UUID                  { return r.id }
func (r *Reservation) RoomID() uuid.UUID              { return r.roomID }
func (r *Reservation) PrimaryGuestID() uuid.UUID      { return r.primaryGuestID }
func (r *Reservation) SecondaryGuestIDs() []uuid.UUID { return r.secondaryGuestIDs }
func (r *Reservation) Stay() StayPeriod               { return r.stay }
func (r *Reservation) Status() Status                 { return r.status }
func (r *Reservation) NightlyRate() Money             { return r.nightlyRate }
func (r *Reservation) Headcount() int                 { return r.headcount }
func (r *Reservation) PaymentMethod() PaymentMethod   { return r.paymentMethod }
func (r *Reservation) CheckedInAt() *time.Time        { return r.checkedInAt }
func (r *Reservation) CheckedOutAt() *time.Time       { return r.checkedOutAt }
func (r *Reservation) CanceledAt() *time.Time         { return r.canceledAt }
func (r *Reservation) CancelReason() string           { return r.cancelReason }
func (r *Reservation) CanceledBy() *uuid.UUID         { return r.canceledBy }
func (r *Reservation) CreatedAt() time.Time           { return r.createdAt }
