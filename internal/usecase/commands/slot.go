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

type CreateSlotParams struct {
	ServiceID uuid.UUID
	StartsAt  time.Time
	Capacity  int
	// GuestName, when set, additionally records an owner-authored
	// reservation on behalf of a walk-in customer. This path bypasses
	// the one-active-reservation rule: the owner is authoring for
	// someone who has no account.
	GuestName string
}

type EditSlotParams struct {
	StartsAt   *time.Time
	Capacity   *int
	PriceCents *int64
}

type SlotCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateSlotParams) (uuid.UUID, error)
	Edit(ctx context.Context, ownerID, slotID uuid.UUID, params EditSlotParams) error
	// Delete refuses while active reservations exist unless force is
	// set, in which case they are cancelled first in the same
	// transaction. The UI drives force as an explicit second step.
	Delete(ctx context.Context, ownerID, slotID uuid.UUID, force bool) error
}

type slotCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSlotCommands(uow shared.UnitOfWork, clock clock.Clock) SlotCommands {
	return &slotCommandsImpl{uow: uow, clock: clock}
}

func (u *slotCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, params CreateSlotParams) (uuid.UUID, error) {
	var slotID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ten, err := tx.Reads().TenantByOwner(ctx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTenantNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		svc, err := tx.Reads().ServiceByID(ctx, params.ServiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if svc.TenantID != ten.ID {
			return ErrUnauthorized
		}

		if err := checkWorkingHours(ctx, tx, ten.ID, params.StartsAt); err != nil {
			return err
		}

		capacity := params.Capacity
		if capacity == 0 {
			capacity = 1
		}
		entity, err := slot.NewSlot(svc.ID, params.StartsAt, svc.DurationMin, capacity, svc.PriceCents)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		inserted, err := tx.Slots().Create(ctx, entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !inserted {
			return ErrSlotAlreadyExists
		}
		slotID = entity.ID()

		if params.GuestName != "" {
			note, err := reservation.NewNote(params.GuestName)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			guest := reservation.NewReservation(entity.ID(), ownerID, note)
			if err := tx.Reservations().Create(ctx, guest); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return slotID, nil
}

func (u *slotCommandsImpl) Edit(ctx context.Context, ownerID, slotID uuid.UUID, params EditSlotParams) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := u.ownedSlotForUpdate(ctx, tx, ownerID, slotID)
		if err != nil {
			return err
		}

		entity := slot.ReconstructSlot(
			snap.ID, snap.ServiceID,
			snap.StartsAt, snap.DurationMin, snap.Capacity, snap.PriceCents,
			zeroTime, zeroTime,
		)

		if params.StartsAt != nil {
			if err := checkWorkingHours(ctx, tx, snap.TenantID, *params.StartsAt); err != nil {
				return err
			}
			if err := entity.Reschedule(*params.StartsAt); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if params.Capacity != nil {
			active, err := tx.Reads().ActiveReservationCount(ctx, snap.ID)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if err := entity.Resize(*params.Capacity, active); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if params.PriceCents != nil {
			if err := entity.Reprice(*params.PriceCents); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}

		if err := tx.Slots().Update(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrSlotAlreadyExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *slotCommandsImpl) Delete(ctx context.Context, ownerID, slotID uuid.UUID, force bool) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := u.ownedSlotForUpdate(ctx, tx, ownerID, slotID)
		if err != nil {
			return err
		}

		active, err := tx.Reads().ActiveReservationCount(ctx, snap.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if active > 0 {
			if !force {
				return ErrSlotInUse
			}
			if err := tx.Reservations().CancelAllActiveBySlot(ctx, snap.ID, u.clock.Now()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Slots().Delete(ctx, snap.ID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *slotCommandsImpl) ownedSlotForUpdate(ctx context.Context, tx shared.Tx, ownerID, slotID uuid.UUID) (*shared.SlotSnapshot, error) {
	ten, err := tx.Reads().TenantByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snap, err := tx.Reads().SlotByIDForUpdate(ctx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.TenantID != ten.ID {
		return nil, ErrUnauthorized
	}
	return snap, nil
}
