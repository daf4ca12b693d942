package response

import (
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	RoomType       string    `json:"roomType"`
	BasePriceCents int64     `json:"basePriceCents"`
	Clean          bool      `json:"clean"`
	Occupied       bool      `json:"occupied"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:             rm.ID,
		Number:         rm.Number,
		RoomType:       rm.RoomType,
		BasePriceCents: rm.BasePriceCents,
		Clean:          rm.Clean,
		Occupied:       rm.Occupied,
	}
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromRoomView(rm))
	}
	return out
}
