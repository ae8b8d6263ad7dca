//go:build unit

package commands_test

import (
	"context"
	"testing"

	"turnera/internal/infra"
	"turnera/internal/usecase/shared"
	sharedmock "turnera/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// stubTx hands commands the mock-backed ports of a single transaction.
type stubTx struct {
	tenants      *sharedmock.MockTenantRepository
	services     *sharedmock.MockServiceRepository
	workingHours *sharedmock.MockWorkingHoursRepository
	slots        *sharedmock.MockSlotRepository
	reservations *sharedmock.MockReservationRepository
	locks        *sharedmock.MockLocks
	reads        *sharedmock.MockCommandReads
}

func (t *stubTx) Tenants() shared.TenantRepository            { return t.tenants }
func (t *stubTx) Services() shared.ServiceRepository          { return t.services }
func (t *stubTx) WorkingHours() shared.WorkingHoursRepository { return t.workingHours }
func (t *stubTx) Slots() shared.SlotRepository                { return t.slots }
func (t *stubTx) Reservations() shared.ReservationRepository  { return t.reservations }
func (t *stubTx) Locks() shared.Locks                         { return t.locks }
func (t *stubTx) Reads() shared.CommandReads                  { return t.reads }

// stubUoW runs the unit of work against the stub transaction without a
// database. Retries are exercised separately at the infra layer.
type stubUoW struct {
	tx shared.Tx
}

func (u *stubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fixture struct {
	tx  *stubTx
	uow shared.UnitOfWork
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	tx := &stubTx{
		tenants:      sharedmock.NewMockTenantRepository(ctrl),
		services:     sharedmock.NewMockServiceRepository(ctrl),
		workingHours: sharedmock.NewMockWorkingHoursRepository(ctrl),
		slots:        sharedmock.NewMockSlotRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		locks:        sharedmock.NewMockLocks(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
	}
	return &fixture{tx: tx, uow: &stubUoW{tx: tx}}
}

func notFound() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}
