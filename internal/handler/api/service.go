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
	"github.com/google/uuid"
)

type ServiceHandler struct {
	serviceCommands commands.ServiceCommands
	serviceQueries  queries.ServiceQueries
	tenantQueries   queries.TenantQueries
}

func NewServiceHandler(
	serviceCommands commands.ServiceCommands,
	serviceQueries queries.ServiceQueries,
	tenantQueries queries.TenantQueries,
) *ServiceHandler {
	return &ServiceHandler{
		serviceCommands: serviceCommands,
		serviceQueries:  serviceQueries,
		tenantQueries:   tenantQueries,
	}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.ServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	id, err := h.serviceCommands.Create(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID format", nil)
		return
	}

	var req reqdto.ServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.serviceCommands.Update(c.Request.Context(), userID, serviceID, req.ToParams()); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid service ID format", nil)
		return
	}

	if err := h.serviceCommands.Delete(c.Request.Context(), userID, serviceID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) Mine(c *gin.Context) {
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

	services, err := h.serviceQueries.ByTenant(c.Request.Context(), tenantView.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(services))
}

func (h *ServiceHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTenantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Service belongs to another tenant", nil)
	case errors.Is(err, commands.ErrServiceInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, "Service has active reservations", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid service definition", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
