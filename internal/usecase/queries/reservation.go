package queries

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/reservation"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, limit int) ([]*ReservationListItem, error)
	ActiveForRoom(ctx context.Context, roomID uuid.UUID) (*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindRecent(ctx context.Context, limit int32) ([]*ReservationListItem, error)
	FindActiveForRoom(ctx context.Context, roomID uuid.UUID, now time.Time) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clk}
}

// GetByID returns the detail view with the bill derived from the stored
// snapshots, never from current catalog prices.
func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	attachBill(view)
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, limit int) ([]*ReservationListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	return q.store.FindRecent(ctx, int32(limit))
}

// ActiveForRoom returns the reservation whose effective stay interval
// contains the current instant, if any.
func (q *reservationQueriesImpl) ActiveForRoom(ctx context.Context, roomID uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindActiveForRoom(ctx, roomID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	attachBill(view)
	return view, nil
}

func attachBill(view *ReservationView) {
	stay, err := reservation.NewStayPeriod(view.CheckInDate, view.CheckOutDate)
	if err != nil {
		return
	}

	var consumptionTotal int64
	for _, e := range view.Entries {
		consumptionTotal += e.TotalCents
	}

	bill := reservation.ComputeBillFor(stay, reservation.NewMoney(view.NightlyRateCents), consumptionTotal)
	view.Bill = BillView{
		Nights:                bill.Nights,
		NightlyRateCents:      bill.NightlyRateCents,
		LodgingTotalCents:     bill.LodgingTotalCents,
		ConsumptionTotalCents: bill.ConsumptionTotalCents,
		GrandTotalCents:       bill.GrandTotalCents,
	}
}
