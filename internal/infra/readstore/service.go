package readstore

import (
	"context"

	"turnera/internal/infra"
	"turnera/internal/infra/db"
	"turnera/internal/pkg/pgconv"
	"turnera/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindByTenant(ctx context.Context, tenantID uuid.UUID) ([]*queries.ServiceView, error) {
	sql, args, err := qb.Select("id", "tenant_id", "name", "description", "duration_min", "price_cents", "created_at").
		From("services").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build service list select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find services", err)
	}
	defer rows.Close()

	result := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.TenantID, &v.Name, &v.Description, &v.DurationMin, &v.PriceCents, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return result, nil
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	sql, args, err := qb.Select("id", "tenant_id", "name", "description", "duration_min", "price_cents", "created_at").
		From("services").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build service select", err)
	}

	var v queries.ServiceView
	row := r.db.QueryRow(ctx, sql, args...)
	if err := row.Scan(&v.ID, &v.TenantID, &v.Name, &v.Description, &v.DurationMin, &v.PriceCents, &v.CreatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &v, nil
}
