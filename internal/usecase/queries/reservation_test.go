//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queryNow = time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

type fakeReservationReadStore struct {
	views   map[uuid.UUID]*queries.ReservationView
	byRoom  map[uuid.UUID]*queries.ReservationView
	recent  []*queries.ReservationListItem
	lastNow time.Time
}

func (f *fakeReservationReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	v, ok := f.views[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	cp := *v
	return &cp, nil
}

func (f *fakeReservationReadStore) FindRecent(_ context.Context, limit int32) ([]*queries.ReservationListItem, error) {
	if int(limit) < len(f.recent) {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeReservationReadStore) FindActiveForRoom(_ context.Context, roomID uuid.UUID, now time.Time) (*queries.ReservationView, error) {
	f.lastNow = now
	v, ok := f.byRoom[roomID]
	if !ok {
		return nil, infra.WrapRepoErr("no active reservation for room", nil, infra.KindNotFound)
	}
	cp := *v
	return &cp, nil
}

func sampleView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:               uuid.New(),
		RoomID:           uuid.New(),
		RoomNumber:       "101",
		PrimaryGuestID:   uuid.New(),
		CheckInDate:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:     time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		Status:           "checked_in",
		NightlyRateCents: 25000,
		Headcount:        2,
		PaymentMethod:    "card",
		CreatedAt:        time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Entries: []queries.ConsumptionEntryView{
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Sparkling water", Quantity: 2, UnitPriceCents: 600, TotalCents: 1200},
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "Laundry", Quantity: 1, UnitPriceCents: 1500, TotalCents: 1500},
		},
	}
}

func TestReservationQueries_GetByID(t *testing.T) {
	t.Run("attaches the bill from stored snapshots", func(t *testing.T) {
		view := sampleView()
		store := &fakeReservationReadStore{views: map[uuid.UUID]*queries.ReservationView{view.ID: view}}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		got, err := q.GetByID(context.Background(), view.ID)
		require.NoError(t, err)

		assert.Equal(t, 3.0, got.Bill.Nights)
		assert.Equal(t, int64(75000), got.Bill.LodgingTotalCents)
		assert.Equal(t, int64(2700), got.Bill.ConsumptionTotalCents)
		assert.Equal(t, int64(77700), got.Bill.GrandTotalCents)
	})

	t.Run("not found", func(t *testing.T) {
		store := &fakeReservationReadStore{views: map[uuid.UUID]*queries.ReservationView{}}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		_, err := q.GetByID(context.Background(), uuid.New())
		require.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestReservationQueries_ActiveForRoom(t *testing.T) {
	t.Run("resolves against the current instant", func(t *testing.T) {
		view := sampleView()
		store := &fakeReservationReadStore{byRoom: map[uuid.UUID]*queries.ReservationView{view.RoomID: view}}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		got, err := q.ActiveForRoom(context.Background(), view.RoomID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
		assert.Equal(t, queryNow, store.lastNow)
		assert.Equal(t, int64(77700), got.Bill.GrandTotalCents)
	})

	t.Run("vacant room", func(t *testing.T) {
		store := &fakeReservationReadStore{byRoom: map[uuid.UUID]*queries.ReservationView{}}
		q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

		_, err := q.ActiveForRoom(context.Background(), uuid.New())
		require.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestReservationQueries_List(t *testing.T) {
	store := &fakeReservationReadStore{
		recent: []*queries.ReservationListItem{
			{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()},
		},
	}
	q := queries.NewReservationQueries(store, clock.NewMockClock(queryNow))

	t.Run("respects the limit", func(t *testing.T) {
		items, err := q.List(context.Background(), 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("non-positive limit falls back to the default", func(t *testing.T) {
		items, err := q.List(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}
