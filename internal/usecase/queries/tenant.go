package queries

import (
	"context"

	"turnera/internal/pkg/pubcode"

	"github.com/google/uuid"
)

type TenantQueries interface {
	// ByCode resolves a tenant from its public booking code. Lookup is
	// case-insensitive; the stored canonical form is upper-case.
	ByCode(ctx context.Context, code string) (*TenantView, error)
	Mine(ctx context.Context, ownerID uuid.UUID) (*TenantView, error)
}

type TenantViewRepo interface {
	FindByCode(ctx context.Context, code string) (*TenantView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*TenantView, error)
}

type tenantQueriesImpl struct {
	repo TenantViewRepo
}

func NewTenantQueries(repo TenantViewRepo) TenantQueries {
	return &tenantQueriesImpl{repo: repo}
}

func (q *tenantQueriesImpl) ByCode(ctx context.Context, code string) (*TenantView, error) {
	return q.repo.FindByCode(ctx, pubcode.Normalize(code))
}

func (q *tenantQueriesImpl) Mine(ctx context.Context, ownerID uuid.UUID) (*TenantView, error) {
	return q.repo.FindByOwner(ctx, ownerID)
}
