package api

import (
	"errors"
	"net/http"

	reqdto "turnera/internal/handler/dto/request"
	resdto "turnera/internal/handler/dto/response"
	"turnera/internal/handler/httperr"
	"turnera/internal/handler/middleware"
	"turnera/internal/infra"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleQueries  queries.ScheduleQueries
	tenantQueries    queries.TenantQueries
}

func NewScheduleHandler(
	scheduleCommands commands.ScheduleCommands,
	scheduleQueries queries.ScheduleQueries,
	tenantQueries queries.TenantQueries,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleQueries:  scheduleQueries,
		tenantQueries:    tenantQueries,
	}
}

func (h *ScheduleHandler) ReplaceWeek(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.ReplaceWeekRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.scheduleCommands.ReplaceWeek(c.Request.Context(), userID, req.ToParams()); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidTimeBlock):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid or overlapping time blocks", nil)
		case errors.Is(err, commands.ErrTenantNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) Week(c *gin.Context) {
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

	blocks, err := h.scheduleQueries.Week(c.Request.Context(), tenantView.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBlockViews(blocks))
}
