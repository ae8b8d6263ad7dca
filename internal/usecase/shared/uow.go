package shared

import (
	"context"
	"time"

	"turnera/internal/domain/reservation"
	"turnera/internal/domain/schedule"
	"turnera/internal/domain/slot"
	"turnera/internal/domain/tenant"
	domainsvc "turnera/internal/domain/service"

	"github.com/google/uuid"
)

// UnitOfWork runs command-side work inside one database transaction.
// Store-transient failures (lock timeout, serialization, deadlock) are
// retried once before the error surfaces to the caller.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write repositories and command-side reads of one
// transaction. Reads performed through it observe the transaction's
// locks, which is what makes check-then-insert sequences safe.
type Tx interface {
	Tenants() TenantRepository
	Services() ServiceRepository
	WorkingHours() WorkingHoursRepository
	Slots() SlotRepository
	Reservations() ReservationRepository
	Locks() Locks
	Reads() CommandReads
}

// Locks are per-transaction advisory locks. ClientTenant serializes the
// one-active-reservation check for a (client, tenant) pair across
// concurrent transactions touching different slots of the same tenant.
type Locks interface {
	ClientTenant(ctx context.Context, clientID, tenantID uuid.UUID) error
}

type TenantRepository interface {
	Create(ctx context.Context, t *tenant.Tenant) error
	UpdateProfile(ctx context.Context, id uuid.UUID, name, description, timezone string) error
	UpdateCode(ctx context.Context, id uuid.UUID, code string) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *domainsvc.Service) error
	Update(ctx context.Context, s *domainsvc.Service) error
	// Delete removes the service together with its reservation-free
	// slots. Slots holding reservations (of any status) are kept out of
	// its reach; the command layer refuses deletion while active ones
	// exist and lets historical ones ride along with the service row.
	Delete(ctx context.Context, id uuid.UUID) error
}

type WorkingHoursRepository interface {
	// ReplaceWeek swaps the tenant's whole weekly availability in one
	// statement pair (delete + bulk insert); there is no incremental patch.
	ReplaceWeek(ctx context.Context, tenantID uuid.UUID, week schedule.Week) error
}

type SlotRepository interface {
	// Create inserts the slot unless one already exists for the same
	// (service, start). Reports whether this call actually inserted.
	Create(ctx context.Context, s *slot.Slot) (bool, error)
	Update(ctx context.Context, s *slot.Slot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error
	// CancelAllActiveBySlot supports the owner's force-delete path.
	CancelAllActiveBySlot(ctx context.Context, slotID uuid.UUID, cancelledAt time.Time) error
}

// CommandReads are the minimal snapshots commands validate against.
// They are deliberately not the read-side view types.
type CommandReads interface {
	TenantByID(ctx context.Context, id uuid.UUID) (*TenantSnapshot, error)
	TenantByOwner(ctx context.Context, ownerID uuid.UUID) (*TenantSnapshot, error)
	TenantCodeExists(ctx context.Context, code string) (bool, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	ServiceHasActiveReservations(ctx context.Context, serviceID uuid.UUID) (bool, error)
	WeekByTenant(ctx context.Context, tenantID uuid.UUID) (schedule.Week, error)
	// SlotByIDForUpdate takes the per-slot row lock that serializes the
	// capacity check against concurrent reservation inserts.
	SlotByIDForUpdate(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
	SlotByServiceStart(ctx context.Context, serviceID uuid.UUID, startsAt time.Time) (*SlotSnapshot, error)
	ActiveReservationCount(ctx context.Context, slotID uuid.UUID) (int, error)
	HasActiveFutureReservation(ctx context.Context, clientID, tenantID uuid.UUID, now time.Time) (bool, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

type TenantSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Code        string
	Name        string
	Description string
	Timezone    string
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Name        string
	Description string
	DurationMin int
	PriceCents  int64
}

type SlotSnapshot struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	TenantID    uuid.UUID
	StartsAt    time.Time
	DurationMin int
	Capacity    int
	PriceCents  int64
}

type ReservationSnapshot struct {
	ID           uuid.UUID
	SlotID       uuid.UUID
	ClientID     uuid.UUID
	TenantID     uuid.UUID
	Status       string
	SlotStartsAt time.Time
}
