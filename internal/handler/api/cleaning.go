package api

import (
	"errors"
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CleaningHandler struct {
	commands commands.CleaningCommands
	queries  queries.RoomQueries
}

func NewCleaningHandler(cmds commands.CleaningCommands, qrs queries.RoomQueries) *CleaningHandler {
	return &CleaningHandler{
		commands: cmds,
		queries:  qrs,
	}
}

func (h *CleaningHandler) RecordCleaning(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.RecordCleaningRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor := actorName(c)
	params := commands.RecordCleaningParams{
		RoomID:        roomID,
		ReservationID: req.ReservationID,
		Kind:          req.Kind,
		Notes:         req.Notes,
		PerformedBy:   actor,
		Actor:         actor,
	}

	id, err := h.commands.Record(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *CleaningHandler) ListCleanings(c *gin.Context) {
	roomID, ok := parseIDParam(c)
	if !ok {
		return
	}

	views, err := h.queries.CleaningsByRoom(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	records := make([]queries.CleaningRecordView, 0, len(views))
	for _, v := range views {
		records = append(records, *v)
	}
	c.JSON(http.StatusOK, resdto.FromCleaningRecordViews(records))
}
