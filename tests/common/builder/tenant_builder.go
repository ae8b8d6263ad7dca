//go:build unit || e2e

package builder

import (
	"time"

	domtenant "turnera/internal/domain/tenant"
	"turnera/internal/usecase/queries"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type TenantBuilder struct {
	OwnerID     uuid.UUID
	Code        string
	Name        string
	Description string
	Timezone    string
	CreatedAt   time.Time
}

func NewTenantBuilder() *TenantBuilder {
	return &TenantBuilder{
		OwnerID:     uuid.New(),
		Code:        "ABCD2345",
		Name:        "Corner Barbershop",
		Description: "Walk-ins welcome",
		Timezone:    "America/Argentina/Buenos_Aires",
		CreatedAt:   time.Now(),
	}
}

func (b *TenantBuilder) With(mutate func(*TenantBuilder)) *TenantBuilder {
	mutate(b)
	return b
}

func (b *TenantBuilder) BuildDomain() (*domtenant.Tenant, error) {
	return domtenant.NewTenant(b.OwnerID, b.Code, b.Name, b.Description, b.Timezone)
}

func (b *TenantBuilder) BuildSnapshot() *shared.TenantSnapshot {
	return &shared.TenantSnapshot{
		ID:          uuid.New(),
		OwnerID:     b.OwnerID,
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		Timezone:    b.Timezone,
	}
}

func (b *TenantBuilder) BuildView() *queries.TenantView {
	return &queries.TenantView{
		ID:          uuid.New(),
		Code:        b.Code,
		Name:        b.Name,
		Description: b.Description,
		Timezone:    b.Timezone,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *TenantBuilder) WithOwnerID(id uuid.UUID) *TenantBuilder {
	b.OwnerID = id
	return b
}

func (b *TenantBuilder) WithCode(code string) *TenantBuilder {
	b.Code = code
	return b
}

func (b *TenantBuilder) WithName(name string) *TenantBuilder {
	b.Name = name
	return b
}

func (b *TenantBuilder) WithTimezone(tz string) *TenantBuilder {
	b.Timezone = tz
	return b
}
