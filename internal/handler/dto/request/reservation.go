package request

import (
	"time"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
}

type ReserveDirectRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
}
