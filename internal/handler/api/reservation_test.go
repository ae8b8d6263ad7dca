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

	"turnera/internal/handler/api"
	"turnera/internal/handler/middleware"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReservationCommands struct {
	reservedID uuid.UUID
	err        error
}

func (s *stubReservationCommands) Reserve(context.Context, uuid.UUID, uuid.UUID) (uuid.UUID, error) {
	return s.reservedID, s.err
}

func (s *stubReservationCommands) ReserveDirect(context.Context, uuid.UUID, uuid.UUID, time.Time) (uuid.UUID, error) {
	return s.reservedID, s.err
}

func (s *stubReservationCommands) Cancel(context.Context, uuid.UUID, uuid.UUID) error {
	return s.err
}

type stubReservationQueries struct{}

func (stubReservationQueries) ByClient(context.Context, uuid.UUID) ([]*queries.MyReservationView, error) {
	return nil, nil
}

// newReserveRouter mounts the reserve endpoint behind the error-collector
// middleware, recording how many errors each request left on the context.
func newReserveRouter(userID uuid.UUID, cmds commands.ReservationCommands, collected *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Next()
		*collected = len(c.Errors)
	})
	engine.Use(middleware.ErrorHandler())

	h := api.NewReservationHandler(cmds, stubReservationQueries{})
	engine.POST("/api/reservations", func(c *gin.Context) { c.Set("user_id", userID) }, h.Reserve)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Message
}

func TestReserveHandlerErrorCollection(t *testing.T) {
	slotID := uuid.New()

	t.Run("command failure lands on the error collector", func(t *testing.T) {
		var collected int
		engine := newReserveRouter(uuid.New(), &stubReservationCommands{err: commands.ErrCapacityExceeded}, &collected)

		rec := postJSON(t, engine, "/api/reservations", `{"slot_id":"`+slotID.String()+`"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Slot is fully booked", errorMessage(t, rec))
		assert.Equal(t, 1, collected)
	})

	t.Run("bind failure lands on the error collector", func(t *testing.T) {
		var collected int
		engine := newReserveRouter(uuid.New(), &stubReservationCommands{}, &collected)

		rec := postJSON(t, engine, "/api/reservations", `{"slot_id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request format", errorMessage(t, rec))
		assert.Equal(t, 1, collected)
	})

	t.Run("success leaves no errors behind", func(t *testing.T) {
		var collected int
		reservedID := uuid.New()
		engine := newReserveRouter(uuid.New(), &stubReservationCommands{reservedID: reservedID}, &collected)

		rec := postJSON(t, engine, "/api/reservations", `{"slot_id":"`+slotID.String()+`"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 0, collected)

		var body struct {
			ID uuid.UUID `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, reservedID, body.ID)
	})
}
