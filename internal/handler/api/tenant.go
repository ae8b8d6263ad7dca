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

type TenantHandler struct {
	tenantCommands commands.TenantCommands
	tenantQueries  queries.TenantQueries
	serviceQueries queries.ServiceQueries
}

func NewTenantHandler(
	tenantCommands commands.TenantCommands,
	tenantQueries queries.TenantQueries,
	serviceQueries queries.ServiceQueries,
) *TenantHandler {
	return &TenantHandler{
		tenantCommands: tenantCommands,
		tenantQueries:  tenantQueries,
		serviceQueries: serviceQueries,
	}
}

// Activate provisions the caller's tenant, or refreshes its profile when
// it already exists. Safe to call repeatedly.
func (h *TenantHandler) Activate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	var req reqdto.ActivateTenantRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params := commands.ActivateTenantParams{
		Name:        req.TrimmedName(),
		Description: req.Description,
		Timezone:    req.Timezone,
	}

	if _, err := h.tenantCommands.Activate(c.Request.Context(), userID, params); err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid tenant profile", nil)
		case errors.Is(err, commands.ErrCodeGenerationExhausted):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Could not allocate a public code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.tenantQueries.Mine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTenantView(view))
}

func (h *TenantHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	view, err := h.tenantQueries.Mine(c.Request.Context(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTenantView(view))
}

func (h *TenantHandler) RegenerateCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoUserContext, "Internal server error", nil)
		return
	}

	code, err := h.tenantCommands.RegenerateCode(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTenantNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
		case errors.Is(err, commands.ErrCodeGenerationExhausted):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Could not allocate a public code", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TenantCodeResponse{Code: code})
}

// ByCode is the anonymous entry point: visitors land here with a code
// shared out of band.
func (h *TenantHandler) ByCode(c *gin.Context) {
	view, err := h.tenantQueries.ByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTenantView(view))
}

func (h *TenantHandler) ServicesByCode(c *gin.Context) {
	view, err := h.tenantQueries.ByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Tenant not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	services, err := h.serviceQueries.ByTenant(c.Request.Context(), view.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceViews(services))
}
