package request

import "turnera/internal/usecase/commands"

type ServiceRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
}

func (r ServiceRequest) ToParams() commands.ServiceParams {
	return commands.ServiceParams{
		Name:        r.Name,
		Description: r.Description,
		DurationMin: r.DurationMin,
		PriceCents:  r.PriceCents,
	}
}
