package response

import (
	"time"

	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

type VisitorSlotResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"serviceId"`
	StartsAt    time.Time `json:"startsAt"`
	DurationMin int       `json:"durationMin"`
	PriceCents  int64     `json:"priceCents"`
	Occupied    bool      `json:"occupied"`
}

func FromVisitorSlotViews(rms []*queries.VisitorSlotView) []*VisitorSlotResponse {
	result := make([]*VisitorSlotResponse, len(rms))
	for i, rm := range rms {
		result[i] = &VisitorSlotResponse{
			ID:          rm.ID,
			ServiceID:   rm.ServiceID,
			StartsAt:    rm.StartsAt,
			DurationMin: rm.DurationMin,
			PriceCents:  rm.PriceCents,
			Occupied:    rm.Occupied,
		}
	}
	return result
}

type AgendaReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"clientId"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AgendaSlotResponse struct {
	ID           uuid.UUID                   `json:"id"`
	ServiceID    uuid.UUID                   `json:"serviceId"`
	ServiceName  string                      `json:"serviceName"`
	StartsAt     time.Time                   `json:"startsAt"`
	DurationMin  int                         `json:"durationMin"`
	Capacity     int                         `json:"capacity"`
	PriceCents   int64                       `json:"priceCents"`
	Reservations []AgendaReservationResponse `json:"reservations"`
}

func FromAgendaSlotViews(rms []*queries.AgendaSlotView) []*AgendaSlotResponse {
	result := make([]*AgendaSlotResponse, len(rms))
	for i, rm := range rms {
		reservations := make([]AgendaReservationResponse, len(rm.Reservations))
		for j, r := range rm.Reservations {
			reservations[j] = AgendaReservationResponse{
				ID:        r.ID,
				ClientID:  r.ClientID,
				Status:    r.Status,
				Note:      r.Note,
				CreatedAt: r.CreatedAt,
			}
		}
		result[i] = &AgendaSlotResponse{
			ID:           rm.ID,
			ServiceID:    rm.ServiceID,
			ServiceName:  rm.ServiceName,
			StartsAt:     rm.StartsAt,
			DurationMin:  rm.DurationMin,
			Capacity:     rm.Capacity,
			PriceCents:   rm.PriceCents,
			Reservations: reservations,
		}
	}
	return result
}
