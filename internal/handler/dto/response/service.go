package response

import (
	"time"

	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenantId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	DurationMin int       `json:"durationMin"`
	PriceCents  int64     `json:"priceCents"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromServiceView(rm *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:          rm.ID,
		TenantID:    rm.TenantID,
		Name:        rm.Name,
		Description: rm.Description,
		DurationMin: rm.DurationMin,
		PriceCents:  rm.PriceCents,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromServiceViews(rms []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromServiceView(rm)
	}
	return result
}
