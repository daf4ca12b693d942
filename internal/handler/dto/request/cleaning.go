package request

import "github.com/google/uuid"

type RecordCleaningRequest struct {
	ReservationID *uuid.UUID `json:"reservation_id"`
	Kind          string     `json:"kind" binding:"required"`
	Notes         string     `json:"notes"`
}
