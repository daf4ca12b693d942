//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel-frontdesk/internal/handler/api"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservationCommands struct {
	createErr  error
	createID   uuid.UUID
	checkInErr error
	cancelErr  error
	lastActor  string
}

func (s *stubReservationCommands) Create(_ context.Context, params commands.CreateReservationParams) (uuid.UUID, error) {
	s.lastActor = params.Actor
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	return s.createID, nil
}

func (s *stubReservationCommands) CheckIn(_ context.Context, _ uuid.UUID, actor string) error {
	s.lastActor = actor
	return s.checkInErr
}

func (s *stubReservationCommands) CheckOut(_ context.Context, _ uuid.UUID, actor string) error {
	s.lastActor = actor
	return nil
}

func (s *stubReservationCommands) Cancel(_ context.Context, _ uuid.UUID, _ string, _ uuid.UUID, actor string) error {
	s.lastActor = actor
	return s.cancelErr
}

type stubConsumptionCommands struct {
	err error
}

func (s *stubConsumptionCommands) Add(_ context.Context, _ commands.AddConsumptionParams) (uuid.UUID, error) {
	if s.err != nil {
		return uuid.Nil, s.err
	}
	return uuid.New(), nil
}

type stubReservationQueries struct {
	view      *queries.ReservationView
	err       error
	lastLimit int
}

func (s *stubReservationQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubReservationQueries) List(_ context.Context, limit int) ([]*queries.ReservationListItem, error) {
	s.lastLimit = limit
	return nil, nil
}

func (s *stubReservationQueries) ActiveForRoom(_ context.Context, _ uuid.UUID) (*queries.ReservationView, error) {
	return s.GetByID(context.Background(), uuid.Nil)
}

func newReservationRouter(cmds *stubReservationCommands, cons *stubConsumptionCommands, qrs *stubReservationQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := api.NewReservationHandler(cmds, cons, qrs)

	router.POST("/reservations", h.CreateReservation)
	router.GET("/reservations", h.ListReservations)
	router.GET("/reservations/:id", h.GetReservation)
	router.POST("/reservations/:id/check-in", h.CheckIn)
	router.POST("/reservations/:id/cancel", h.Cancel)
	router.POST("/reservations/:id/consumptions", h.AddConsumption)
	return router
}

func validCreateBody() string {
	return `{
		"room_id": "` + uuid.NewString() + `",
		"primary_guest_id": "` + uuid.NewString() + `",
		"check_in_date": "2025-03-10",
		"check_out_date": "2025-03-13",
		"headcount": 2,
		"payment_method": "card"
	}`
}

func doJSON(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReservationHandler_Create(t *testing.T) {
	view := &queries.ReservationView{
		ID:           uuid.New(),
		RoomID:       uuid.New(),
		RoomNumber:   "101",
		CheckInDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		Status:       "pending",
	}

	t.Run("created", func(t *testing.T) {
		cmds := &stubReservationCommands{createID: view.ID}
		router := newReservationRouter(cmds, &stubConsumptionCommands{}, &stubReservationQueries{view: view})

		rec := doJSON(router, http.MethodPost, "/reservations", validCreateBody(), map[string]string{"X-Actor": "alice"})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "alice", cmds.lastActor)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, view.ID.String(), resp["id"])
		assert.Equal(t, "2025-03-10", resp["checkInDate"])
	})

	t.Run("actor defaults to system", func(t *testing.T) {
		cmds := &stubReservationCommands{createID: view.ID}
		router := newReservationRouter(cmds, &stubConsumptionCommands{}, &stubReservationQueries{view: view})

		rec := doJSON(router, http.MethodPost, "/reservations", validCreateBody(), nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "system", cmds.lastActor)
	})

	t.Run("unavailable room maps to conflict", func(t *testing.T) {
		cmds := &stubReservationCommands{createErr: commands.ErrRoomUnavailable}
		router := newReservationRouter(cmds, &stubConsumptionCommands{}, &stubReservationQueries{view: view})

		rec := doJSON(router, http.MethodPost, "/reservations", validCreateBody(), nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown room maps to not found", func(t *testing.T) {
		cmds := &stubReservationCommands{createErr: commands.ErrRoomNotFound}
		router := newReservationRouter(cmds, &stubConsumptionCommands{}, &stubReservationQueries{view: view})

		rec := doJSON(router, http.MethodPost, "/reservations", validCreateBody(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid stay period maps to bad request", func(t *testing.T) {
		cmds := &stubReservationCommands{createErr: commands.ErrInvalidStayPeriod}
		router := newReservationRouter(cmds, &stubConsumptionCommands{}, &stubReservationQueries{view: view})

		rec := doJSON(router, http.MethodPost, "/reservations", validCreateBody(), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{view: view})

		body := strings.Replace(validCreateBody(), "2025-03-10", "10/03/2025", 1)
		rec := doJSON(router, http.MethodPost, "/reservations", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{view: view})

		rec := doJSON(router, http.MethodPost, "/reservations", `{}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReservationHandler_Transitions(t *testing.T) {
	id := uuid.NewString()

	t.Run("check-in succeeds", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{})

		rec := doJSON(router, http.MethodPost, "/reservations/"+id+"/check-in", "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		cmds := &stubReservationCommands{checkInErr: commands.ErrInvalidTransition}
		router := newReservationRouter(cmds, &stubConsumptionCommands{}, &stubReservationQueries{})

		rec := doJSON(router, http.MethodPost, "/reservations/"+id+"/check-in", "", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown reservation maps to not found", func(t *testing.T) {
		cmds := &stubReservationCommands{checkInErr: commands.ErrReservationNotFound}
		router := newReservationRouter(cmds, &stubConsumptionCommands{}, &stubReservationQueries{})

		rec := doJSON(router, http.MethodPost, "/reservations/"+id+"/check-in", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{})

		rec := doJSON(router, http.MethodPost, "/reservations/not-a-uuid/check-in", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cancel without reason is rejected by binding", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{})

		rec := doJSON(router, http.MethodPost, "/reservations/"+id+"/cancel", `{"actor_id": "`+uuid.NewString()+`"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cancel with reason", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{})

		body := `{"reason": "guest request", "actor_id": "` + uuid.NewString() + `"}`
		rec := doJSON(router, http.MethodPost, "/reservations/"+id+"/cancel", body, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestReservationHandler_AddConsumption(t *testing.T) {
	id := uuid.NewString()
	body := `{"product_id": "` + uuid.NewString() + `", "quantity": 2}`

	t.Run("created", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{})

		rec := doJSON(router, http.MethodPost, "/reservations/"+id+"/consumptions", body, nil)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown product maps to not found", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{err: commands.ErrProductNotFound}, &stubReservationQueries{})

		rec := doJSON(router, http.MethodPost, "/reservations/"+id+"/consumptions", body, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReservationHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{err: queries.ErrReservationNotFound})

		rec := doJSON(router, http.MethodGet, "/reservations/"+uuid.NewString(), "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReservationHandler_List(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		qrs := &stubReservationQueries{}
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, qrs)

		rec := doJSON(router, http.MethodGet, "/reservations", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 50, qrs.lastLimit)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		qrs := &stubReservationQueries{}
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, qrs)

		rec := doJSON(router, http.MethodGet, "/reservations?limit=9999999999999", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 200, qrs.lastLimit)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		router := newReservationRouter(&stubReservationCommands{}, &stubConsumptionCommands{}, &stubReservationQueries{})

		rec := doJSON(router, http.MethodGet, "/reservations?limit=ten", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
