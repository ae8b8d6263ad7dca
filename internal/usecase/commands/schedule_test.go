//go:build unit

package commands_test

import (
	"context"
	"testing"

	"turnera/internal/domain/schedule"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReplaceWeek(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	tenantID := uuid.New()

	valid := []commands.BlockParams{
		{Weekday: 1, Start: "09:00", End: "13:00"},
		{Weekday: 1, Start: "14:00", End: "18:00"},
		{Weekday: 3, Start: "10:00", End: "16:00"},
	}

	t.Run("replaces the whole week", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewScheduleCommands(f.uow)

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).
			Return(&shared.TenantSnapshot{ID: tenantID, OwnerID: ownerID}, nil)

		var stored schedule.Week
		f.tx.workingHours.EXPECT().ReplaceWeek(gomock.Any(), tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, week schedule.Week) error {
				stored = week
				return nil
			})

		require.NoError(t, uc.ReplaceWeek(ctx, ownerID, valid))
		assert.Len(t, stored.All(), 3)
	})

	t.Run("an empty list clears availability", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewScheduleCommands(f.uow)

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).
			Return(&shared.TenantSnapshot{ID: tenantID, OwnerID: ownerID}, nil)
		f.tx.workingHours.EXPECT().ReplaceWeek(gomock.Any(), tenantID, gomock.Any()).Return(nil)

		require.NoError(t, uc.ReplaceWeek(ctx, ownerID, nil))
	})

	t.Run("validation failures never reach the store", func(t *testing.T) {
		cases := []struct {
			name   string
			blocks []commands.BlockParams
		}{
			{
				name:   "malformed time",
				blocks: []commands.BlockParams{{Weekday: 1, Start: "9am", End: "13:00"}},
			},
			{
				name:   "start not before end",
				blocks: []commands.BlockParams{{Weekday: 1, Start: "13:00", End: "09:00"}},
			},
			{
				name:   "weekday out of range",
				blocks: []commands.BlockParams{{Weekday: 7, Start: "09:00", End: "13:00"}},
			},
			{
				name: "overlap within a day",
				blocks: []commands.BlockParams{
					{Weekday: 1, Start: "09:00", End: "13:00"},
					{Weekday: 1, Start: "12:00", End: "15:00"},
				},
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				f := newFixture(t)
				uc := commands.NewScheduleCommands(f.uow)

				err := uc.ReplaceWeek(ctx, ownerID, c.blocks)
				require.ErrorIs(t, err, commands.ErrInvalidTimeBlock)
			})
		}
	})
}
