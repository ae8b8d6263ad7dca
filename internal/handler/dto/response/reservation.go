package response

import (
	"time"

	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type MyReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	SlotID      uuid.UUID `json:"slotId"`
	TenantName  string    `json:"tenantName"`
	ServiceName string    `json:"serviceName"`
	StartsAt    time.Time `json:"startsAt"`
	DurationMin int       `json:"durationMin"`
	PriceCents  int64     `json:"priceCents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromMyReservationViews(rms []*queries.MyReservationView) []*MyReservationResponse {
	result := make([]*MyReservationResponse, len(rms))
	for i, rm := range rms {
		result[i] = &MyReservationResponse{
			ID:          rm.ID,
			SlotID:      rm.SlotID,
			TenantName:  rm.TenantName,
			ServiceName: rm.ServiceName,
			StartsAt:    rm.StartsAt,
			DurationMin: rm.DurationMin,
			PriceCents:  rm.PriceCents,
			Status:      rm.Status,
			CreatedAt:   rm.CreatedAt,
		}
	}
	return result
}
