package response

import (
	"time"

	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                uuid.UUID                  `json:"id"`
	RoomID            uuid.UUID                  `json:"roomId"`
	RoomNumber        string                     `json:"roomNumber"`
	PrimaryGuestID    uuid.UUID                  `json:"primaryGuestId"`
	SecondaryGuestIDs []uuid.UUID                `json:"secondaryGuestIds"`
	CheckInDate       string                     `json:"checkInDate"`
	CheckOutDate      string                     `json:"checkOutDate"`
	Status            string                     `json:"status"`
	NightlyRateCents  int64                      `json:"nightlyRateCents"`
	Headcount         int                        `json:"headcount"`
	PaymentMethod     string                     `json:"paymentMethod"`
	CheckedInAt       *time.Time                 `json:"checkedInAt,omitempty"`
	CheckedOutAt      *time.Time                 `json:"checkedOutAt,omitempty"`
	CanceledAt        *time.Time                 `json:"canceledAt,omitempty"`
	CancelReason      *string                    `json:"cancelReason,omitempty"`
	CanceledBy        *uuid.UUID                 `json:"canceledBy,omitempty"`
	CreatedAt         time.Time                  `json:"createdAt"`
	Entries           []ConsumptionEntryResponse `json:"entries"`
	Bill              BillResponse               `json:"bill"`
}

type ReservationListResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"roomId"`
	RoomNumber       string    `json:"roomNumber"`
	PrimaryGuestID   uuid.UUID `json:"primaryGuestId"`
	CheckInDate      string    `json:"checkInDate"`
	CheckOutDate     string    `json:"checkOutDate"`
	Status           string    `json:"status"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	CreatedAt        time.Time `json:"createdAt"`
}

type ConsumptionEntryResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	TotalCents     int64     `json:"totalCents"`
	RecordedAt     time.Time `json:"recordedAt"`
}

type BillResponse struct {
	Nights                float64 `json:"nights"`
	NightlyRateCents      int64   `json:"nightlyRateCents"`
	LodgingTotalCents     int64   `json:"lodgingTotalCents"`
	ConsumptionTotalCents int64   `json:"consumptionTotalCents"`
	GrandTotalCents       int64   `json:"grandTotalCents"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	entries := make([]ConsumptionEntryResponse, 0, len(rm.Entries))
	for i := range rm.Entries {
		entries = append(entries, fromConsumptionEntryView(&rm.Entries[i]))
	}
	return &ReservationResponse{
		ID:                rm.ID,
		RoomID:            rm.RoomID,
		RoomNumber:        rm.RoomNumber,
		PrimaryGuestID:    rm.PrimaryGuestID,
		SecondaryGuestIDs: rm.SecondaryGuestIDs,
		CheckInDate:       rm.CheckInDate.Format(time.DateOnly),
		CheckOutDate:      rm.CheckOutDate.Format(time.DateOnly),
		Status:            rm.Status,
		NightlyRateCents:  rm.NightlyRateCents,
		Headcount:         rm.Headcount,
		PaymentMethod:     rm.PaymentMethod,
		CheckedInAt:       rm.CheckedInAt,
		CheckedOutAt:      rm.CheckedOutAt,
		CanceledAt:        rm.CanceledAt,
		CancelReason:      rm.CancelReason,
		CanceledBy:        rm.CanceledBy,
		CreatedAt:         rm.CreatedAt,
		Entries:           entries,
		Bill: BillResponse{
			Nights:                rm.Bill.Nights,
			NightlyRateCents:      rm.Bill.NightlyRateCents,
			LodgingTotalCents:     rm.Bill.LodgingTotalCents,
			ConsumptionTotalCents: rm.Bill.ConsumptionTotalCents,
			GrandTotalCents:       rm.Bill.GrandTotalCents,
		},
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:               rm.ID,
		RoomID:           rm.RoomID,
		RoomNumber:       rm.RoomNumber,
		PrimaryGuestID:   rm.PrimaryGuestID,
		CheckInDate:      rm.CheckInDate.Format(time.DateOnly),
		CheckOutDate:     rm.CheckOutDate.Format(time.DateOnly),
		Status:           rm.Status,
		NightlyRateCents: rm.NightlyRateCents,
		CreatedAt:        rm.CreatedAt,
	}
}

func fromConsumptionEntryView(v *queries.ConsumptionEntryView) ConsumptionEntryResponse {
	return ConsumptionEntryResponse{
		ID:             v.ID,
		ProductID:      v.ProductID,
		ProductName:    v.ProductName,
		Quantity:       v.Quantity,
		UnitPriceCents: v.UnitPriceCents,
		TotalCents:     v.TotalCents,
		RecordedAt:     v.RecordedAt,
	}
}
