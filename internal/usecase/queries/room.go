package queries

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidRange = errs.New("invalid availability range")

// RoomQueries is the read side of the availability engine: occupancy is
// derived from active reservations at query time, not from a stored flag.
type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
	Available(ctx context.Context, start, end time.Time) ([]*RoomView, error)
	AvailableRoomIDs(ctx context.Context, start, end time.Time) ([]uuid.UUID, error)
	IsRoomAvailable(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeReservationID *uuid.UUID) (bool, error)
	CleaningsByRoom(ctx context.Context, roomID uuid.UUID) ([]*CleaningRecordView, error)
}

type RoomReadStore interface {
	ListWithOccupancy(ctx context.Context, now time.Time) ([]*RoomView, error)
	FindAvailable(ctx context.Context, stay reservation.StayPeriod, now time.Time) ([]*RoomView, error)
	CheckAvailable(ctx context.Context, roomID uuid.UUID, stay reservation.StayPeriod, excludeReservationID *uuid.UUID) (bool, error)
	FindCleaningsByRoom(ctx context.Context, roomID uuid.UUID) ([]*CleaningRecordView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	clock clock.Clock
}

func NewRoomQueries(store RoomReadStore, clk clock.Clock) RoomQueries {
	return &roomQueriesImpl{store: store, clock: clk}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.store.ListWithOccupancy(ctx, q.clock.Now())
}

func (q *roomQueriesImpl) Available(ctx context.Context, start, end time.Time) ([]*RoomView, error) {
	stay, err := reservation.NewStayPeriod(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	return q.store.FindAvailable(ctx, stay, q.clock.Now())
}

func (q *roomQueriesImpl) AvailableRoomIDs(ctx context.Context, start, end time.Time) ([]uuid.UUID, error) {
	rooms, err := q.Available(ctx, start, end)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids, nil
}

func (q *roomQueriesImpl) IsRoomAvailable(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeReservationID *uuid.UUID) (bool, error) {
	stay, err := reservation.NewStayPeriod(start, end)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidRange)
	}
	return q.store.CheckAvailable(ctx, roomID, stay, excludeReservationID)
}

func (q *roomQueriesImpl) CleaningsByRoom(ctx context.Context, roomID uuid.UUID) ([]*CleaningRecordView, error) {
	return q.store.FindCleaningsByRoom(ctx, roomID)
}
