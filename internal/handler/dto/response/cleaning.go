package response

import (
	"time"

	"hotel-frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type CleaningRecordResponse struct {
	ID            uuid.UUID  `json:"id"`
	RoomID        uuid.UUID  `json:"roomId"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
	Kind          string     `json:"kind"`
	Notes         string     `json:"notes"`
	PerformedBy   string     `json:"performedBy"`
	PerformedAt   time.Time  `json:"performedAt"`
}

func FromCleaningRecordViews(rms []queries.CleaningRecordView) []CleaningRecordResponse {
	out := make([]CleaningRecordResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, CleaningRecordResponse{
			ID:            rm.ID,
			RoomID:        rm.RoomID,
			ReservationID: rm.ReservationID,
			Kind:          rm.Kind,
			Notes:         rm.Notes,
			PerformedBy:   rm.PerformedBy,
			PerformedAt:   rm.PerformedAt,
		})
	}
	return out
}
