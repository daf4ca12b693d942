package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type RoomView struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	RoomType       string    `json:"room_type"`
	BasePriceCents int64     `json:"base_price_cents"`
	Clean          bool      `json:"clean"`
	Occupied       bool      `json:"occupied"`
}

type ReservationListItem struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"room_id"`
	RoomNumber       string    `json:"room_number"`
	PrimaryGuestID   uuid.UUID `json:"primary_guest_id"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date"`
	Status           string    `json:"status"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	CreatedAt        time.Time `json:"created_at"`
}

type ConsumptionEntryView struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	TotalCents     int64     `json:"total_cents"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type BillView struct {
	Nights                float64 `json:"nights"`
	NightlyRateCents      int64   `json:"nightly_rate_cents"`
	LodgingTotalCents     int64   `json:"lodging_total_cents"`
	ConsumptionTotalCents int64   `json:"consumption_total_cents"`
	GrandTotalCents       int64   `json:"grand_total_cents"`
}

type ReservationView struct {
	ID                uuid.UUID              `json:"id"`
	RoomID            uuid.UUID              `json:"room_id"`
	RoomNumber        string                 `json:"room_number"`
	PrimaryGuestID    uuid.UUID              `json:"primary_guest_id"`
	SecondaryGuestIDs []uuid.UUID            `json:"secondary_guest_ids"`
	CheckInDate       time.Time              `json:"check_in_date"`
	CheckOutDate      time.Time              `json:"check_out_date"`
	Status            string                 `json:"status"`
	NightlyRateCents  int64                  `json:"nightly_rate_cents"`
	Headcount         int                    `json:"headcount"`
	PaymentMethod     string                 `json:"payment_method"`
	CheckedInAt       *time.Time             `json:"checked_in_at,omitempty"`
	CheckedOutAt      *time.Time             `json:"checked_out_at,omitempty"`
	CanceledAt        *time.Time             `json:"canceled_at,omitempty"`
	CancelReason      *string                `json:"cancel_reason,omitempty"`
	CanceledBy        *uuid.UUID             `json:"canceled_by,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	Entries           []ConsumptionEntryView `json:"entries"`
	Bill              BillView               `json:"bill"`
}

type CleaningRecordView struct {
	ID            uuid.UUID  `json:"id"`
	RoomID        uuid.UUID  `json:"room_id"`
	ReservationID *uuid.UUID `json:"reservation_id,omitempty"`
	Kind          string     `json:"kind"`
	Notes         string     `json:"notes"`
	PerformedBy   string     `json:"performed_by"`
	PerformedAt   time.Time  `json:"performed_at"`
}
