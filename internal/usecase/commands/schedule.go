package commands

import (
	"context"
	"time"

	"turnera/internal/domain/schedule"
	"turnera/internal/infra"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlockParams struct {
	Weekday int
	Start   string
	End     string
}

type ScheduleCommands interface {
	// ReplaceWeek swaps the caller's entire weekly availability
	// atomically. Partial weekday edits are expressed by sending that
	// weekday's full (possibly empty) list; there is no incremental
	// patch, which is what keeps overlapping-block races out of the model.
	ReplaceWeek(ctx context.Context, ownerID uuid.UUID, blocks []BlockParams) error
}

type scheduleCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleCommands(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleCommandsImpl{uow: uow}
}

func (u *scheduleCommandsImpl) ReplaceWeek(ctx context.Context, ownerID uuid.UUID, blocks []BlockParams) error {
	// Validate the whole payload before touching the store.
	week, err := parseWeek(blocks)
	if err != nil {
		return err
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ten, err := tx.Reads().TenantByOwner(ctx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTenantNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.WorkingHours().ReplaceWeek(ctx, ten.ID, week); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func parseWeek(blocks []BlockParams) (schedule.Week, error) {
	parsed := make([]schedule.Block, 0, len(blocks))
	for _, b := range blocks {
		start, err := schedule.ParseTimeOfDay(b.Start)
		if err != nil {
			return schedule.Week{}, errs.Mark(err, ErrInvalidTimeBlock)
		}
		end, err := schedule.ParseTimeOfDay(b.End)
		if err != nil {
			return schedule.Week{}, errs.Mark(err, ErrInvalidTimeBlock)
		}
		block, err := schedule.NewBlock(time.Weekday(b.Weekday), start, end)
		if err != nil {
			return schedule.Week{}, errs.Mark(err, ErrInvalidTimeBlock)
		}
		parsed = append(parsed, block)
	}

	week, err := schedule.NewWeek(parsed)
	if err != nil {
		return schedule.Week{}, errs.Mark(err, ErrInvalidTimeBlock)
	}
	return week, nil
}
