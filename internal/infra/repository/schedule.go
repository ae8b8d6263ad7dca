package repository

import (
	"context"

	"turnera/internal/domain/schedule"
	"turnera/internal/infra"
	"turnera/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type WorkingHoursRepository struct {
	db db.DBTX
}

func NewWorkingHoursRepository(dbtx db.DBTX) *WorkingHoursRepository {
	return &WorkingHoursRepository{db: dbtx}
}

// ReplaceWeek deletes the tenant's blocks and bulk-inserts the new set
// inside the caller's transaction, so readers never see a half-replaced
// week.
func (r *WorkingHoursRepository) ReplaceWeek(ctx context.Context, tenantID uuid.UUID, week schedule.Week) error {
	sql, args, err := qb.Delete("working_hours").
		Where(sq.Eq{"tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build working hours delete", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to clear working hours", err)
	}

	blocks := week.All()
	if len(blocks) == 0 {
		return nil
	}

	insert := qb.Insert("working_hours").
		Columns("tenant_id", "weekday", "start_min", "end_min")
	for _, b := range blocks {
		insert = insert.Values(
			tenantID,
			int(b.Weekday()),
			b.Start().Hour()*60+b.Start().Minute(),
			b.End().Hour()*60+b.End().Minute(),
		)
	}

	sql, args, err = insert.ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build working hours insert", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to insert working hours", err)
	}
	return nil
}
