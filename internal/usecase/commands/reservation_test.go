//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"turnera/internal/domain/reservation"
	"turnera/internal/domain/schedule"
	"turnera/internal/pkg/clock"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func mondayMorningWeek(t *testing.T) schedule.Week {
	t.Helper()
	start, err := schedule.ParseTimeOfDay("09:00")
	require.NoError(t, err)
	end, err := schedule.ParseTimeOfDay("13:00")
	require.NoError(t, err)
	block, err := schedule.NewBlock(time.Monday, start, end)
	require.NoError(t, err)
	week, err := schedule.NewWeek([]schedule.Block{block})
	require.NoError(t, err)
	return week
}

func TestReserve(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	slotID := uuid.New()
	tenantID := uuid.New()

	slotSnap := &shared.SlotSnapshot{
		ID:       slotID,
		TenantID: tenantID,
		Capacity: 2,
	}

	t.Run("books a slot with room", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.locks.EXPECT().ClientTenant(gomock.Any(), clientID, tenantID).Return(nil)
		f.tx.reads.EXPECT().HasActiveFutureReservation(gomock.Any(), clientID, tenantID, testNow).Return(false, nil)
		f.tx.reads.EXPECT().ActiveReservationCount(gomock.Any(), slotID).Return(1, nil)

		var created *reservation.Reservation
		f.tx.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
				created = r
				return nil
			})

		id, err := uc.Reserve(ctx, clientID, slotID)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, slotID, created.SlotID())
		assert.Equal(t, clientID, created.ClientID())
		assert.True(t, created.IsActive())
	})

	t.Run("unknown slot", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(nil, notFound())

		_, err := uc.Reserve(ctx, clientID, slotID)
		require.ErrorIs(t, err, commands.ErrSlotNotFound)
	})

	t.Run("client already holds an active reservation with the tenant", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.locks.EXPECT().ClientTenant(gomock.Any(), clientID, tenantID).Return(nil)
		f.tx.reads.EXPECT().HasActiveFutureReservation(gomock.Any(), clientID, tenantID, testNow).Return(true, nil)

		_, err := uc.Reserve(ctx, clientID, slotID)
		require.ErrorIs(t, err, commands.ErrDuplicateActiveReservation)
	})

	t.Run("slot is full", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.locks.EXPECT().ClientTenant(gomock.Any(), clientID, tenantID).Return(nil)
		f.tx.reads.EXPECT().HasActiveFutureReservation(gomock.Any(), clientID, tenantID, testNow).Return(false, nil)
		f.tx.reads.EXPECT().ActiveReservationCount(gomock.Any(), slotID).Return(2, nil)

		_, err := uc.Reserve(ctx, clientID, slotID)
		require.ErrorIs(t, err, commands.ErrCapacityExceeded)
	})
}

func TestReserveDirect(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	serviceID := uuid.New()
	tenantID := uuid.New()

	svcSnap := &shared.ServiceSnapshot{
		ID:          serviceID,
		TenantID:    tenantID,
		DurationMin: 30,
		PriceCents:  150000,
	}
	tenantSnap := &shared.TenantSnapshot{
		ID:       tenantID,
		Timezone: "America/Argentina/Buenos_Aires",
	}

	// 2026-09-07 is a Monday; 12:00 UTC is 09:00 in Buenos Aires.
	opening := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	t.Run("books the opening minute", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		slotID := uuid.New()
		slotSnap := &shared.SlotSnapshot{
			ID:       slotID,
			TenantID: tenantID,
			StartsAt: opening,
			Capacity: 1,
		}

		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)
		f.tx.slots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(true, nil)
		f.tx.reads.EXPECT().SlotByServiceStart(gomock.Any(), serviceID, opening).Return(slotSnap, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), slotID).Return(slotSnap, nil)
		f.tx.locks.EXPECT().ClientTenant(gomock.Any(), clientID, tenantID).Return(nil)
		f.tx.reads.EXPECT().HasActiveFutureReservation(gomock.Any(), clientID, tenantID, testNow).Return(false, nil)
		f.tx.reads.EXPECT().ActiveReservationCount(gomock.Any(), slotID).Return(0, nil)
		f.tx.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		id, err := uc.ReserveDirect(ctx, clientID, serviceID, opening)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("one minute before opening is rejected", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)

		_, err := uc.ReserveDirect(ctx, clientID, serviceID, opening.Add(-time.Minute))
		require.ErrorIs(t, err, commands.ErrOutsideWorkingHours)
	})

	t.Run("start at closing is rejected even though the slot would fit earlier", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)

		closing := time.Date(2026, 9, 7, 16, 0, 0, 0, time.UTC)
		_, err := uc.ReserveDirect(ctx, clientID, serviceID, closing)
		require.ErrorIs(t, err, commands.ErrOutsideWorkingHours)
	})

	t.Run("losing the creation race adopts the winner's slot", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		existingID := uuid.New()
		existing := &shared.SlotSnapshot{
			ID:       existingID,
			TenantID: tenantID,
			StartsAt: opening,
			Capacity: 3,
		}

		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(svcSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).Return(tenantSnap, nil)
		f.tx.reads.EXPECT().WeekByTenant(gomock.Any(), tenantID).Return(mondayMorningWeek(t), nil)
		f.tx.slots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(false, nil)
		f.tx.reads.EXPECT().SlotByServiceStart(gomock.Any(), serviceID, opening).Return(existing, nil)
		f.tx.reads.EXPECT().SlotByIDForUpdate(gomock.Any(), existingID).Return(existing, nil)
		f.tx.locks.EXPECT().ClientTenant(gomock.Any(), clientID, tenantID).Return(nil)
		f.tx.reads.EXPECT().HasActiveFutureReservation(gomock.Any(), clientID, tenantID, testNow).Return(false, nil)
		f.tx.reads.EXPECT().ActiveReservationCount(gomock.Any(), existingID).Return(1, nil)

		var created *reservation.Reservation
		f.tx.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) error {
				created = r
				return nil
			})

		_, err := uc.ReserveDirect(ctx, clientID, serviceID, opening)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, existingID, created.SlotID())
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().ServiceByID(gomock.Any(), serviceID).Return(nil, notFound())

		_, err := uc.ReserveDirect(ctx, clientID, serviceID, opening)
		require.ErrorIs(t, err, commands.ErrServiceNotFound)
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()
	clientID := uuid.New()
	ownerID := uuid.New()
	tenantID := uuid.New()
	reservationID := uuid.New()

	activeSnap := &shared.ReservationSnapshot{
		ID:       reservationID,
		ClientID: clientID,
		TenantID: tenantID,
		Status:   "active",
	}

	t.Run("client cancels their own reservation", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().ReservationByID(gomock.Any(), reservationID).Return(activeSnap, nil)
		f.tx.reservations.EXPECT().MarkCancelled(gomock.Any(), reservationID, testNow).Return(nil)

		require.NoError(t, uc.Cancel(ctx, clientID, reservationID))
	})

	t.Run("tenant owner cancels on the client's behalf", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().ReservationByID(gomock.Any(), reservationID).Return(activeSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).
			Return(&shared.TenantSnapshot{ID: tenantID, OwnerID: ownerID}, nil)
		f.tx.reservations.EXPECT().MarkCancelled(gomock.Any(), reservationID, testNow).Return(nil)

		require.NoError(t, uc.Cancel(ctx, ownerID, reservationID))
	})

	t.Run("a stranger cannot cancel", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().ReservationByID(gomock.Any(), reservationID).Return(activeSnap, nil)
		f.tx.reads.EXPECT().TenantByID(gomock.Any(), tenantID).
			Return(&shared.TenantSnapshot{ID: tenantID, OwnerID: ownerID}, nil)

		require.ErrorIs(t, uc.Cancel(ctx, uuid.New(), reservationID), commands.ErrUnauthorized)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		cancelled := &shared.ReservationSnapshot{
			ID:       reservationID,
			ClientID: clientID,
			TenantID: tenantID,
			Status:   "cancelled",
		}
		f.tx.reads.EXPECT().ReservationByID(gomock.Any(), reservationID).Return(cancelled, nil)

		require.ErrorIs(t, uc.Cancel(ctx, clientID, reservationID), commands.ErrReservationAlreadyCancelled)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)
		uc := commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))

		f.tx.reads.EXPECT().ReservationByID(gomock.Any(), reservationID).Return(nil, notFound())

		require.ErrorIs(t, uc.Cancel(ctx, clientID, reservationID), commands.ErrReservationNotFound)
	})
}
