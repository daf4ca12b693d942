//go:build unit || e2e

package builder

import (
	"time"

	domres "hotel-frontdesk/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RoomID            uuid.UUID
	BasePriceCents    int64
	PrimaryGuestID    uuid.UUID
	SecondaryGuestIDs []uuid.UUID
	CheckInDate       time.Time
	CheckOutDate      time.Time
	Headcount         int
	PaymentMethod     domres.PaymentMethod
	Now               time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		RoomID:         uuid.New(),
		BasePriceCents: 25000,
		PrimaryGuestID: uuid.New(),
		CheckInDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		Headcount:      2,
		PaymentMethod:  domres.PaymentCard,
		Now:            time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	stay, err := domres.NewStayPeriod(b.CheckInDate, b.CheckOutDate)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(
		domres.RoomSpec{ID: b.RoomID, BasePriceCents: b.BasePriceCents},
		b.PrimaryGuestID,
		b.SecondaryGuestIDs,
		stay,
		b.Headcount,
		b.PaymentMethod,
		b.Now,
	)
}

func (b *ReservationBuilder) MustBuildDomain() *domres.Reservation {
	res, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return res
}
