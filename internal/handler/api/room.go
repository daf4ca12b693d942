package api

import (
	"errors"
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	queries            queries.RoomQueries
	reservationQueries queries.ReservationQueries
}

func NewRoomHandler(qrs queries.RoomQueries, resQrs queries.ReservationQueries) *RoomHandler {
	return &RoomHandler{
		queries:            qrs,
		reservationQueries: resQrs,
	}
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "check_in_date and check_out_date are required",
		})
		return
	}

	checkIn, err := reqdto.ParseDate(query.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	checkOut, err := reqdto.ParseDate(query.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.queries.Available(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out date must be after check-in date",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// GetActiveReservation resolves the reservation currently occupying a room,
// used by the front desk to jump from a room to its guest.
func (h *RoomHandler) GetActiveReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.reservationQueries.ActiveForRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No active reservation for this room",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
