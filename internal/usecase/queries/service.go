package queries

import (
	"context"

	"github.com/google/uuid"
)

type ServiceQueries interface {
	ByTenant(ctx context.Context, tenantID uuid.UUID) ([]*ServiceView, error)
	ByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type ServiceViewRepo interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type serviceQueriesImpl struct {
	repo ServiceViewRepo
}

func NewServiceQueries(repo ServiceViewRepo) ServiceQueries {
	return &serviceQueriesImpl{repo: repo}
}

func (q *serviceQueriesImpl) ByTenant(ctx context.Context, tenantID uuid.UUID) ([]*ServiceView, error) {
	return q.repo.FindByTenant(ctx, tenantID)
}

func (q *serviceQueriesImpl) ByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	return q.repo.FindByID(ctx, id)
}
