package room

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrNegativePrice   = errors.New("base price cannot be negative")
)

// Room inventory record. The clean flag is written only by the reservation
// lifecycle (check-out) and cleaning recording; occupancy is not stored at
// all but derived from active reservations at query time.
type Room struct {
	id             uuid.UUID
	number         string
	roomType       string
	basePriceCents int64
	clean          bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewRoom(id uuid.UUID, number, roomType string, basePriceCents int64, clean bool) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}
	if roomType == "" {
		roomType = "standard"
	}

	return &Room{
		id:             id,
		number:         number,
		roomType:       roomType,
		basePriceCents: basePriceCents,
		clean:          clean,
	}, nil
}

func ReconstructRoom(id uuid.UUID, number, roomType string, basePriceCents int64, clean bool, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:             id,
		number:         number,
		roomType:       roomType,
		basePriceCents: basePriceCents,
		clean:          clean,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Room) ID() uuid.UUID         { return r.id }
func (r *Room) Number() string        { return r.number }
func (r *Room) RoomType() string      { return r.roomType }
func (r *Room) BasePriceCents() int64 { return r.basePriceCents }
func (r *Room) Clean() bool           { return r.clean }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
func (r *Room) UpdatedAt() time.Time  { return r.updatedAt }
