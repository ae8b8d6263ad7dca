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

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type TenantReadStore struct {
	db db.DBTX
}

func NewTenantReadStore(dbtx db.DBTX) *TenantReadStore {
	return &TenantReadStore{db: dbtx}
}

func (r *TenantReadStore) FindByCode(ctx context.Context, code string) (*queries.TenantView, error) {
	return r.findOne(ctx, sq.Eq{"code": code})
}

func (r *TenantReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.TenantView, error) {
	return r.findOne(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *TenantReadStore) findOne(ctx context.Context, pred sq.Eq) (*queries.TenantView, error) {
	sql, args, err := qb.Select("id", "code", "name", "description", "timezone", "created_at").
		From("tenants").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build tenant select", err)
	}

	var v queries.TenantView
	row := r.db.QueryRow(ctx, sql, args...)
	if err := row.Scan(&v.ID, &v.Code, &v.Name, &v.Description, &v.Timezone, &v.CreatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tenant", err)
	}
	return &v, nil
}
