package repository

import (
	"context"

	"turnera/internal/domain/slot"
	"turnera/internal/infra"
	"turnera/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

// Create inserts with ON CONFLICT DO NOTHING on (service_id, starts_at)
// so two transactions materializing the same interval converge on one
// row. The return reports whether this call won the insert.
func (r *SlotRepository) Create(ctx context.Context, s *slot.Slot) (bool, error) {
	sql, args, err := qb.Insert("slots").
		Columns("id", "service_id", "starts_at", "duration_min", "capacity", "price_cents").
		Values(s.ID(), s.ServiceID(), s.StartsAt(), s.DurationMin(), s.Capacity(), s.PriceCents()).
		Suffix("ON CONFLICT (service_id, starts_at) DO NOTHING").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build slot insert", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SlotRepository) Update(ctx context.Context, s *slot.Slot) error {
	sql, args, err := qb.Update("slots").
		Set("starts_at", s.StartsAt()).
		Set("capacity", s.Capacity()).
		Set("price_cents", s.PriceCents()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": s.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build slot update", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := qb.Delete("slots").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build slot delete", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
