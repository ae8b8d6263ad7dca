//go:build unit || e2e

package builder

import (
	"time"

	domslot "turnera/internal/domain/slot"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ServiceID   uuid.UUID
	TenantID    uuid.UUID
	StartsAt    time.Time
	DurationMin int
	Capacity    int
	PriceCents  int64
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ServiceID:   uuid.New(),
		TenantID:    uuid.New(),
		StartsAt:    time.Date(2026, 9, 7, 13, 0, 0, 0, time.UTC),
		DurationMin: 30,
		Capacity:    1,
		PriceCents:  150000,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() (*domslot.Slot, error) {
	return domslot.NewSlot(b.ServiceID, b.StartsAt, b.DurationMin, b.Capacity, b.PriceCents)
}

func (b *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:          uuid.New(),
		ServiceID:   b.ServiceID,
		TenantID:    b.TenantID,
		StartsAt:    b.StartsAt,
		DurationMin: b.DurationMin,
		Capacity:    b.Capacity,
		PriceCents:  b.PriceCents,
	}
}

func (b *SlotBuilder) WithServiceID(id uuid.UUID) *SlotBuilder {
	b.ServiceID = id
	return b
}

func (b *SlotBuilder) WithTenantID(id uuid.UUID) *SlotBuilder {
	b.TenantID = id
	return b
}

func (b *SlotBuilder) WithStartsAt(t time.Time) *SlotBuilder {
	b.StartsAt = t
	return b
}

func (b *SlotBuilder) WithCapacity(capacity int) *SlotBuilder {
	b.Capacity = capacity
	return b
}
