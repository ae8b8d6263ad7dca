package queries

import (
	"context"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	// Week lists the tenant's availability blocks ordered by weekday
	// then start time. A tenant with no hours yet gets an empty list.
	Week(ctx context.Context, tenantID uuid.UUID) ([]*BlockView, error)
}

type ScheduleViewRepo interface {
	FindWeekByTenant(ctx context.Context, tenantID uuid.UUID) ([]*BlockView, error)
}

type scheduleQueriesImpl struct {
	repo ScheduleViewRepo
}

func NewScheduleQueries(repo ScheduleViewRepo) ScheduleQueries {
	return &scheduleQueriesImpl{repo: repo}
}

func (q *scheduleQueriesImpl) Week(ctx context.Context, tenantID uuid.UUID) ([]*BlockView, error) {
	return q.repo.FindWeekByTenant(ctx, tenantID)
}
