package request

import (
	"time"

	"turnera/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateSlotRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	Capacity  int       `json:"capacity" binding:"min=0"`
	GuestName string    `json:"guest_name" binding:"max=500"`
}

func (r CreateSlotRequest) ToParams() commands.CreateSlotParams {
	return commands.CreateSlotParams{
		ServiceID: r.ServiceID,
		StartsAt:  r.StartsAt,
		Capacity:  r.Capacity,
		GuestName: r.GuestName,
	}
}

type EditSlotRequest struct {
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	Capacity   *int       `json:"capacity,omitempty"`
	PriceCents *int64     `json:"price_cents,omitempty"`
}

func (r EditSlotRequest) ToParams() commands.EditSlotParams {
	return commands.EditSlotParams{
		StartsAt:   r.StartsAt,
		Capacity:   r.Capacity,
		PriceCents: r.PriceCents,
	}
}
