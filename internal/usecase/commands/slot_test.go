//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"turnera/internal/domain/reservation"
	"turnera/internal/domain/slot"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/shared"

	"turnera/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateSlot(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	tenantID := uuid.New()
	serviceID := uuid.New()

	tenantSnap := &shared.TenantSnapshot{
		ID:       tenantID,
		OwnerID:  ownerID,
		Timezone: "America/Argentina/Buenos_Aires",
	}
	svcSnap := &shared.ServiceSnapshot{
		ID:          serviceID,
		TenantID:    tenantID,
		DurationMin: 30,
		PriceCents:  150000,
	}

	// Monday 09:00 in Buenos Aires.
	opening := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	t.Run("publishes a slot inside working hours", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)

		var created *slot.Slot
		f.tx.slots.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *slot.Slot) (bool, error) {
				created = s
				return true, nil
			})

		id, err := uc.Create(ctx, ownerID, commands.CreateSlotParams{
			ServiceID: serviceID,
			StartsAt:  opening,
			Capacity:  3,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, 3, created.Capacity())
		assert.Equal(t, svcSnap.DurationMin, created.DurationMin())
		assert.Equal(t, svcSnap.PriceCents, created.PriceCents())
	})

	t.Run("capacity defaults to one", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)

		var created *slot.Slot
		f.tx.slots.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *slot.Slot) (bool, error) {
				created = s
				return true, nil
			})

		_, err := uc.Create(ctx, ownerID, commands.CreateSlotParams{ServiceID: serviceID, StartsAt: opening})
		require.NoError(t, err)
		assert.Equal(t, 1, created.Capacity())
	})

	t.Run("duplicate start for the service", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)
		f.tx.slots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := uc.Create(ctx, ownerID, commands.CreateSlotParams{ServiceID: serviceID, StartsAt: opening})
		require.ErrorIs(t, err, commands.ErrSlotAlreadyExists)
	})

	t.Run("start outside working hours", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)

		_, err := uc.Create(ctx, ownerID, commands.CreateSlotParams{
			ServiceID: serviceID,
			StartsAt:  opening.Add(-time.Minute),
		})
		require.ErrorIs(t, err, commands.ErrOutsideWorkingHours)
	})

	t.Run("service belongs to someone else", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).
			Return(&shared.ServiceSnapshot{ID: serviceID, TenantID: uuid.New()}, nil)

		_, err := uc.Create(ctx, ownerID, commands.CreateSlotParams{ServiceID: serviceID, StartsAt: opening})
		require.ErrorIs(t, err, commands.ErrUnauthorized)
	})

	t.Run("guest name records an owner-authored reservation", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)

		var slotID uuid.UUID
		f.tx.slots.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *slot.Slot) (bool, error) {
				slotID = s.ID()
				return true, nil
			})

		var guest *reservation.Reservation
		f.tx.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
				guest = r
				return nil
			})

		_, err := uc.Create(ctx, ownerID, commands.CreateSlotParams{
			ServiceID: serviceID,
			StartsAt:  opening,
			GuestName: "Walk-in Pedro",
		})
		require.NoError(t, err)
		require.NotNil(t, guest)
		assert.Equal(t, slotID, guest.SlotID())
		assert.Equal(t, ownerID, guest.ClientID())
		assert.Equal(t, "Walk-in Pedro", guest.Note().String())
	})
}

func TestEditSlot(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	tenantID := uuid.New()
	slotID := uuid.New()

	tenantSnap := &shared.TenantSnapshot{
		ID:       tenantID,
		OwnerID:  ownerID,
		Timezone: "America/Argentina/Buenos_Aires",
	}
	slotSnap := &shared.SlotSnapshot{
		ID:          slotID,
		ServiceID:   uuid.New(),
		TenantID:    tenantID,
		StartsAt:    time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC),
		DurationMin: 30,
		Capacity:    3,
		PriceCents:  150000,
	}

	t.Run("repricing skips the working-hours check", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)

		var updated *slot.Slot
		f.tx.slots.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *slot.Slot) error {
				updated = s
				return nil
			})

		price := int64(200000)
		require.NoError(t, uc.Edit(ctx, ownerID, slotID, commands.EditSlotParams{PriceCents: &price}))
		assert.Equal(t, price, updated.PriceCents())
	})

	t.Run("rescheduling re-checks working hours", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)

		// Tuesday is closed.
		badStart := time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC)
		err := uc.Edit(ctx, ownerID, slotID, commands.EditSlotParams{StartsAt: &badStart})
		require.ErrorIs(t, err, commands.ErrOutsideWorkingHours)
	})

	t.Run("shrinking below the active count", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.reads.EXPECT().ActiveReservationCount(gomock.Any(), slotID).Return(2, nil)

		capacity := 1
		err := uc.Edit(ctx, ownerID, slotID, commands.EditSlotParams{Capacity: &capacity})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("slot of a different tenant", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).
			Return(&shared.SlotSnapshot{ID: slotID, TenantID: uuid.New()}, nil)

		price := int64(1)
		err := uc.Edit(ctx, ownerID, slotID, commands.EditSlotParams{PriceCents: &price})
		require.ErrorIs(t, err, commands.ErrUnauthorized)
	})
}

func TestDeleteSlot(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	tenantID := uuid.New()
	slotID := uuid.New()

	tenantSnap := &shared.TenantSnapshot{ID: tenantID, OwnerID: ownerID}
	slotSnap := &shared.SlotSnapshot{ID: slotID, TenantID: tenantID, Capacity: 3}

	t.Run("deletes an empty slot", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.reads.EXPECT().ActiveReservationCount(gomock.Any(), slotID).Return(0, nil)
		f.tx.slots.EXPECT().Delete(gomock.Any(), slotID).Return(nil)

		require.NoError(t, uc.Delete(ctx, ownerID, slotID, false))
	})

	t.Run("refuses a booked slot without force", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.reads.EXPECT().ActiveReservationCount(gomock.Any(), slotID).Return(2, nil)

		require.ErrorIs(t, uc.Delete(ctx, ownerID, slotID, false), commands.ErrSlotInUse)
	})

	t.Run("force cancels the reservations first", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewSlotCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().TenantByOwner(gomock.Any(), ownerID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.reads.EXPECT().ActiveReservationCount(gomock.Any(), slotID).Return(2, nil)
		gomock.InOrder(
			f.tx.reservations.EXPECT().CancelAllActiveBySlot(gomock.Any(), slotID, testNow).Return(nil),
			f.tx.slots.EXPECT().Delete(gomock.Any(), slotID).Return(nil),
		)

		require.NoError(t, uc.Delete(ctx, ownerID, slotID, true))
	})
}
