package repository

import (
	"context"

	domainsvc "turnera/internal/domain/service"
	"turnera/internal/infra"
	"turnera/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domainsvc.Service) error {
	sql, args, err := qb.Insert("services").
		Columns("id", "tenant_id", "name", "description", "duration_min", "price_cents").
		Values(s.ID(), s.TenantID(), s.Name(), s.Description(), s.DurationMin(), s.PriceCents()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build service insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *domainsvc.Service) error {
	sql, args, err := qb.Update("services").
		Set("name", s.Name()).
		Set("description", s.Description()).
		Set("duration_min", s.DurationMin()).
		Set("price_cents", s.PriceCents()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": s.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build service update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete relies on the schema's cascading foreign keys to remove the
// service's slots and their cancelled reservation history with it.
func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := qb.Delete("services").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build service delete", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
