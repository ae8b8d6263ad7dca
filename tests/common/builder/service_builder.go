//go:build unit || e2e

package builder

import (
	"time"

	domsvc "turnera/internal/domain/service"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	TenantID    uuid.UUID
	Name        string
	Description string
	DurationMin int
	PriceCents  int64
	CreatedAt   time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		TenantID:    uuid.New(),
		Name:        "Haircut",
		Description: "Classic cut with scissors",
		DurationMin: 30,
		PriceCents:  150000,
		CreatedAt:   time.Now(),
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) BuildDomain() (*domsvc.Service, error) {
	return domsvc.NewService(b.TenantID, b.Name, b.Description, b.DurationMin, b.PriceCents)
}

func (b *ServiceBuilder) BuildSnapshot() *shared.ServiceSnapshot {
	return &shared.ServiceSnapshot{
		ID:          uuid.New(),
		TenantID:    b.TenantID,
		Name:        b.Name,
		Description: b.Description,
		DurationMin: b.DurationMin,
		PriceCents:  b.PriceCents,
	}
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:          uuid.New(),
		TenantID:    b.TenantID,
		Name:        b.Name,
		Description: b.Description,
		DurationMin: b.DurationMin,
		PriceCents:  b.PriceCents,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ServiceBuilder) BuildParams() commands.ServiceParams {
	return commands.ServiceParams{
		Name:        b.Name,
		Description: b.Description,
		DurationMin: b.DurationMin,
		PriceCents:  b.PriceCents,
	}
}

func (b *ServiceBuilder) WithTenantID(id uuid.UUID) *ServiceBuilder {
	b.TenantID = id
	return b
}

func (b *ServiceBuilder) WithName(name string) *ServiceBuilder {
	b.Name = name
	return b
}

func (b *ServiceBuilder) WithDurationMin(min int) *ServiceBuilder {
	b.DurationMin = min
	return b
}

func (b *ServiceBuilder) WithPriceCents(cents int64) *ServiceBuilder {
	b.PriceCents = cents
	return b
}
