package api

import (
	"errors"
	"net/http"

	reqdto "turnera/internal/handler/dto/request"
	resdto "turnera/internal/handler/dto/response"
	"turnera/internal/handler/httperr"
	"turnera/internal/handler/middleware"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

func (h *ReservationHandler) Reserve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.ReserveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.reservationCommands.Reserve(c.Request.Context(), userID, req.SlotID)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// ReserveDirect books straight into a working-hours interval without the
// slot existing beforehand.
func (h *ReservationHandler) ReserveDirect(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.ReserveDirectRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.reservationCommands.ReserveDirect(c.Request.Context(), userID, req.ServiceID, req.StartsAt)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), userID, reservationID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	reservations, err := h.reservationQueries.ByClient(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMyReservationViews(reservations))
}

func (h *ReservationHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errors.Is(err, commands.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, commands.ErrOutsideWorkingHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Start time is outside working hours", nil)
	case errors.Is(err, commands.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is fully booked", nil)
	case errors.Is(err, commands.ErrDuplicateActiveReservation):
		httperr.AbortWithError(c, http.StatusConflict, err, "An active reservation with this provider already exists", nil)
	case errors.Is(err, commands.ErrReservationAlreadyCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is already cancelled", nil)
	case errors.Is(err, commands.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to cancel this reservation", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid reservation request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
