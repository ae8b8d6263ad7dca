package repository

import (
	"context"

	"turnera/internal/domain/tenant"
	"turnera/internal/infra"
	"turnera/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type TenantRepository struct {
	db db.DBTX
}

func NewTenantRepository(dbtx db.DBTX) *TenantRepository {
	return &TenantRepository{db: dbtx}
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	sql, args, err := qb.Insert("tenants").
		Columns("id", "owner_id", "code", "name", "description", "timezone").
		Values(t.ID(), t.OwnerID(), t.Code(), t.Name(), t.Description(), t.Timezone()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build tenant insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create tenant", err)
	}
	return nil
}

func (r *TenantRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, description, timezone string) error {
	sql, args, err := qb.Update("tenants").
		Set("name", name).
		Set("description", description).
		Set("timezone", timezone).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build tenant profile update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update tenant profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tenant not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TenantRepository) UpdateCode(ctx context.Context, id uuid.UUID, code string) error {
	sql, args, err := qb.Update("tenants").
		Set("code", code).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build tenant code update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update tenant code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tenant not found", nil, infra.KindNotFound)
	}
	return nil
}
