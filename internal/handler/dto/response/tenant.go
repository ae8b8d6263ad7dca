package response

import (
	"time"

	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

type TenantResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Timezone    string    `json:"timezone"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromTenantView(rm *queries.TenantView) *TenantResponse {
	return &TenantResponse{
		ID:          rm.ID,
		Code:        rm.Code,
		Name:        rm.Name,
		Description: rm.Description,
		Timezone:    rm.Timezone,
		CreatedAt:   rm.CreatedAt,
	}
}

type TenantCodeResponse struct {
	Code string `json:"code"`
}
