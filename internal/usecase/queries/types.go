package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type TenantView struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Timezone    string    `json:"timezone"`
	CreatedAt   time.Time `json:"created_at"`
}

type BlockView struct {
	Weekday int    `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// VisitorSlotView is the client-facing projection: occupancy is reduced
// to a derived boolean and no other client's identity leaks through it.
type VisitorSlotView struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	StartsAt    time.Time `json:"starts_at"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	Occupied    bool      `json:"occupied"`
}

// AgendaSlotView is the owner-facing projection with full reservation
// detail, the "agenda" the owner plans their day from.
type AgendaSlotView struct {
	ID           uuid.UUID                `json:"id"`
	ServiceID    uuid.UUID                `json:"service_id"`
	ServiceName  string                   `json:"service_name"`
	StartsAt     time.Time                `json:"starts_at"`
	DurationMin  int                      `json:"duration_min"`
	Capacity     int                      `json:"capacity"`
	PriceCents   int64                    `json:"price_cents"`
	Reservations []AgendaReservationView  `json:"reservations"`
}

type AgendaReservationView struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type MyReservationView struct {
	ID          uuid.UUID `json:"id"`
	SlotID      uuid.UUID `json:"slot_id"`
	TenantName  string    `json:"tenant_name"`
	ServiceName string    `json:"service_name"`
	StartsAt    time.Time `json:"starts_at"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
