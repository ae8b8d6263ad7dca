package commands

import (
	"context"
	"time"

	"turnera/internal/domain/reservation"
	"turnera/internal/domain/slot"
	"turnera/internal/infra"
	"turnera/internal/pkg/clock"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	// Reserve books an existing slot for the client. Capacity and the
	// one-active-reservation-per-tenant rule are both re-checked at
	// commit time under locks, so losing a race surfaces as the same
	// error a pre-check would have produced.
	Reserve(ctx context.Context, clientID, slotID uuid.UUID) (uuid.UUID, error)
	// ReserveDirect books straight into a free working-hours interval:
	// eligibility check, get-or-create of the slot and the reservation
	// insert run in one transaction. Two callers racing on the same
	// (service, start) end up booking the same slot, never two.
	ReserveDirect(ctx context.Context, clientID, serviceID uuid.UUID, startsAt time.Time) (uuid.UUID, error)
	// Cancel flips the reservation to cancelled. Allowed to the
	// reservation's client and to the tenant owner; the slot stays.
	Cancel(ctx context.Context, callerID, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clock}
}

func (u *reservationCommandsImpl) Reserve(ctx context.Context, clientID, slotID uuid.UUID) (uuid.UUID, error) {
	var reservationID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sl, err := tx.Reads().SlotByIDForUpdate(ctx, slotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		id, err := u.reserveLocked(ctx, tx, clientID, sl, reservation.Note{})
		if err != nil {
			return err
		}
		reservationID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

func (u *reservationCommandsImpl) ReserveDirect(ctx context.Context, clientID, serviceID uuid.UUID, startsAt time.Time) (uuid.UUID, error) {
	var reservationID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Reads().ServiceByID(ctx, serviceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := checkWorkingHours(ctx, tx, svc.TenantID, startsAt); err != nil {
			return err
		}

		sl, err := u.getOrCreateSlot(ctx, tx, svc, startsAt)
		if err != nil {
			return err
		}

		id, err := u.reserveLocked(ctx, tx, clientID, sl, reservation.Note{})
		if err != nil {
			return err
		}
		reservationID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reservationID, nil
}

func (u *reservationCommandsImpl) Cancel(ctx context.Context, callerID, reservationID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if snap.ClientID != callerID {
			ten, err := tx.Reads().TenantByID(ctx, snap.TenantID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if ten.OwnerID != callerID {
				return ErrUnauthorized
			}
		}

		if reservation.Status(snap.Status) != reservation.StatusActive {
			return ErrReservationAlreadyCancelled
		}

		if err := tx.Reservations().MarkCancelled(ctx, snap.ID, u.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// reserveLocked performs the serialized check-then-insert sequence. The
// caller must already hold the slot's row lock; this takes the
// (client, tenant) advisory lock on top, in that order everywhere, so
// concurrent bookings cannot deadlock across the two locks.
func (u *reservationCommandsImpl) reserveLocked(
	ctx context.Context,
	tx shared.Tx,
	clientID uuid.UUID,
	sl *shared.SlotSnapshot,
	note reservation.Note,
) (uuid.UUID, error) {
	if err := tx.Locks().ClientTenant(ctx, clientID, sl.TenantID); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	duplicate, err := tx.Reads().HasActiveFutureReservation(ctx, clientID, sl.TenantID, u.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if duplicate {
		return uuid.Nil, ErrDuplicateActiveReservation
	}

	active, err := tx.Reads().ActiveReservationCount(ctx, sl.ID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if active >= sl.Capacity {
		return uuid.Nil, ErrCapacityExceeded
	}

	entity := reservation.NewReservation(sl.ID, clientID, note)
	if err := tx.Reservations().Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return entity.ID(), nil
}

// getOrCreateSlot implements the direct-booking slot handshake: insert
// keyed on (service, start) with conflict-tolerant semantics, then
// re-read under the row lock. The loser of a creation race adopts the
// winner's slot and proceeds as a plain Reserve against it.
func (u *reservationCommandsImpl) getOrCreateSlot(
	ctx context.Context,
	tx shared.Tx,
	svc *shared.ServiceSnapshot,
	startsAt time.Time,
) (*shared.SlotSnapshot, error) {
	entity, err := slot.NewSlot(svc.ID, startsAt, svc.DurationMin, 1, svc.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := tx.Slots().Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snap, err := tx.Reads().SlotByServiceStart(ctx, svc.ID, entity.StartsAt())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	locked, err := tx.Reads().SlotByIDForUpdate(ctx, snap.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return locked, nil
}

// checkWorkingHours applies the start-only containment rule in the
// tenant's canonical zone, shared by the direct-booking and the
// owner-authoring paths.
func checkWorkingHours(ctx context.Context, tx shared.Tx, tenantID uuid.UUID, startsAt time.Time) error {
	ten, err := tx.Reads().TenantByID(ctx, tenantID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	week, err := tx.Reads().WeekByTenant(ctx, tenantID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	loc, err := time.LoadLocation(ten.Timezone)
	if err != nil {
		loc = time.UTC
	}
	if !week.Covers(startsAt, loc) {
		return ErrOutsideWorkingHours
	}
	return nil
}
