package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

type CreateReservationRequest struct {
	RoomID            uuid.UUID   `json:"room_id" binding:"required"`
	PrimaryGuestID    uuid.UUID   `json:"primary_guest_id" binding:"required"`
	SecondaryGuestIDs []uuid.UUID `json:"secondary_guest_ids"`
	CheckInDate       string      `json:"check_in_date" binding:"required"`
	CheckOutDate      string      `json:"check_out_date" binding:"required"`
	Headcount         int         `json:"headcount" binding:"required,min=1"`
	PaymentMethod     string      `json:"payment_method" binding:"required"`
}

func (r CreateReservationRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = ParseDate(r.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = ParseDate(r.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

type CancelReservationRequest struct {
	Reason  string    `json:"reason" binding:"required"`
	ActorID uuid.UUID `json:"actor_id" binding:"required"`
}

type AddConsumptionRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
