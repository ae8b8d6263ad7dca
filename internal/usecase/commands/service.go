package commands

import (
	"context"
	"time"

	domainsvc "turnera/internal/domain/service"
	"turnera/internal/infra"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

var zeroTime time.Time

type ServiceParams struct {
	Name        string
	Description string
	DurationMin int
	PriceCents  int64
}

type ServiceCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, params ServiceParams) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, serviceID uuid.UUID, params ServiceParams) error
	// Delete refuses while any slot of the service holds an active
	// reservation. Slots whose reservations are all cancelled do not
	// block deletion; they are removed together with the service.
	Delete(ctx context.Context, ownerID, serviceID uuid.UUID) error
}

type serviceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewServiceCommands(uow shared.UnitOfWork) ServiceCommands {
	return &serviceCommandsImpl{uow: uow}
}

func (u *serviceCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, params ServiceParams) (uuid.UUID, error) {
	var serviceID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ten, err := tx.Reads().TenantByOwner(ctx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTenantNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := domainsvc.NewService(ten.ID, params.Name, params.Description, params.DurationMin, params.PriceCents)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Services().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		serviceID = entity.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return serviceID, nil
}

func (u *serviceCommandsImpl) Update(ctx context.Context, ownerID, serviceID uuid.UUID, params ServiceParams) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := u.ownedService(ctx, tx, ownerID, serviceID)
		if err != nil {
			return err
		}

		entity := domainsvc.ReconstructService(
			snap.ID, snap.TenantID,
			snap.Name, snap.Description,
			snap.DurationMin, snap.PriceCents,
			// timestamps are not updated through the entity
			zeroTime, zeroTime,
		)
		if err := entity.Rename(params.Name, params.Description); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := entity.Reprice(params.DurationMin, params.PriceCents); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Services().Update(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *serviceCommandsImpl) Delete(ctx context.Context, ownerID, serviceID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := u.ownedService(ctx, tx, ownerID, serviceID)
		if err != nil {
			return err
		}

		inUse, err := tx.Reads().ServiceHasActiveReservations(ctx, snap.ID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if inUse {
			return ErrServiceInUse
		}

		if err := tx.Services().Delete(ctx, snap.ID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *serviceCommandsImpl) ownedService(ctx context.Context, tx shared.Tx, ownerID, serviceID uuid.UUID) (*shared.ServiceSnapshot, error) {
	ten, err := tx.Reads().TenantByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snap, err := tx.Reads().ServiceByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.TenantID != ten.ID {
		return nil, ErrUnauthorized
	}
	return snap, nil
}
