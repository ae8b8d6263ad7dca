package readstore

import (
	"context"
	"fmt"

	"turnera/internal/infra"
	"turnera/internal/infra/db"
	"turnera/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

func (r *ScheduleReadStore) FindWeekByTenant(ctx context.Context, tenantID uuid.UUID) ([]*queries.BlockView, error) {
	sql, args, err := qb.Select("weekday", "start_min", "end_min").
		From("working_hours").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("weekday", "start_min").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build working hours select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find working hours", err)
	}
	defer rows.Close()

	result := make([]*queries.BlockView, 0)
	for rows.Next() {
		var weekday, startMin, endMin int
		if err := rows.Scan(&weekday, &startMin, &endMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours row", err)
		}
		result = append(result, &queries.BlockView{
			Weekday: weekday,
			Start:   formatMinutes(startMin),
			End:     formatMinutes(endMin),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read working hours rows", err)
	}
	return result, nil
}

func formatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
