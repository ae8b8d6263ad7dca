package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "turnera/internal/handler/dto/request"
	resdto "turnera/internal/handler/dto/response"
	"turnera/internal/handler/httperr"
	"turnera/internal/handler/middleware"
	"turnera/internal/infra"
	"turnera/internal/pkg/clock"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCommands   commands.SlotCommands
	slotQueries    queries.SlotQueries
	serviceQueries queries.ServiceQueries
	tenantQueries  queries.TenantQueries
	clock          clock.Clock
}

func NewSlotHandler(
	slotCommands commands.SlotCommands,
	slotQueries queries.SlotQueries,
	serviceQueries queries.ServiceQueries,
	tenantQueries queries.TenantQueries,
	clock clock.Clock,
) *SlotHandler {
	return &SlotHandler{
		slotCommands:   slotCommands,
		slotQueries:    slotQueries,
		serviceQueries: serviceQueries,
		tenantQueries:  tenantQueries,
		clock:          clock,
	}
}

func (h *SlotHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.CreateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.slotCommands.Create(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *SlotHandler) Edit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	var req reqdto.EditSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.slotCommands.Edit(c.Request.Context(), userID, slotID, req.ToParams()); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SlotHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))

	if err := h.slotCommands.Delete(c.Request.Context(), userID, slotID, force); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Agenda lists the owner's slots with reservations for a window given by
// from/to query params, defaulting to the coming week.
func (h *SlotHandler) Agenda(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	tenantView, err := h.tenantQueries.Mine(c.Request.Context(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	from, ok := h.timeQuery(c, "from", h.clock.Now())
	if !ok {
		return
	}
	to, ok := h.timeQuery(c, "to", time.Time{})
	if !ok {
		return
	}

	slots, err := h.slotQueries.OwnerAgenda(c.Request.Context(), tenantView.ID, from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAgendaSlotViews(slots))
}

// VisitorSlots is the anonymous listing of a service's upcoming slots.
func (h *SlotHandler) VisitorSlots(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID format", nil)
		return
	}

	if _, err := h.serviceQueries.ByID(c.Request.Context(), serviceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	from, ok := h.timeQuery(c, "from", h.clock.Now())
	if !ok {
		return
	}

	slots, err := h.slotQueries.VisitorSlots(c.Request.Context(), serviceID, from)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVisitorSlotViews(slots))
}

func (h *SlotHandler) timeQuery(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" timestamp", nil)
		return time.Time{}, false
	}
	return t, true
}

func (h *SlotHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTenantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errors.Is(err, commands.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Slot belongs to another tenant", nil)
	case errors.Is(err, commands.ErrOutsideWorkingHours):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Start time is outside working hours", nil)
	case errors.Is(err, commands.ErrSlotAlreadyExists):
		httperr.AbortWithError(c, http.StatusConflict, err, "A slot already exists for this start time", nil)
	case errors.Is(err, commands.ErrSlotInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot has active reservations", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid slot definition", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
