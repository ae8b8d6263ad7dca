package commands

import (
	"context"

	"turnera/internal/domain/tenant"
	"turnera/internal/infra"
	"turnera/internal/pkg/errs"
	"turnera/internal/pkg/pubcode"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

// codeGenerationAttempts bounds the collision-retry loop. With an
// 8-character code over a 32-symbol alphabet collisions are effectively
// theoretical; the bound exists so a broken random source cannot spin.
const codeGenerationAttempts = 5

type ActivateTenantParams struct {
	Name        string
	Description string
	Timezone    string
}

type TenantCommands interface {
	// Activate turns the caller into a provider: it creates their tenant
	// with a fresh public code, or refreshes the profile if the tenant
	// already exists. A retried activation never fails or duplicates.
	Activate(ctx context.Context, ownerID uuid.UUID, params ActivateTenantParams) (uuid.UUID, error)
	// RegenerateCode issues a new public code and invalidates the old one
	// in the same transaction; no two codes are ever simultaneously valid.
	RegenerateCode(ctx context.Context, ownerID uuid.UUID) (string, error)
}

type tenantCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewTenantCommands(uow shared.UnitOfWork) TenantCommands {
	return &tenantCommandsImpl{uow: uow}
}

func (u *tenantCommandsImpl) Activate(ctx context.Context, ownerID uuid.UUID, params ActivateTenantParams) (uuid.UUID, error) {
	id, err := u.activate(ctx, ownerID, params)
	if err != nil && infra.IsKind(err, infra.KindDuplicateKey) {
		// Two first activations raced on the owner's unique index. The
		// failed insert aborted this transaction, so recovery takes a
		// fresh one, where the winner's row is visible and the call
		// converges on the profile-update path.
		return u.activate(ctx, ownerID, params)
	}
	return id, err
}

func (u *tenantCommandsImpl) activate(ctx context.Context, ownerID uuid.UUID, params ActivateTenantParams) (uuid.UUID, error) {
	var tenantID uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().TenantByOwner(ctx, ownerID)
		if err == nil {
			tenantID = existing.ID
			if updErr := tx.Tenants().UpdateProfile(ctx, existing.ID, params.Name, params.Description, params.Timezone); updErr != nil {
				return errs.Mark(updErr, ErrDatabaseOperationFailed)
			}
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		code, err := u.uniqueCode(ctx, tx)
		if err != nil {
			return err
		}

		entity, err := tenant.NewTenant(ownerID, code, params.Name, params.Description, params.Timezone)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Tenants().Create(ctx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		tenantID = entity.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return tenantID, nil
}

func (u *tenantCommandsImpl) RegenerateCode(ctx context.Context, ownerID uuid.UUID) (string, error) {
	var newCode string
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().TenantByOwner(ctx, ownerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTenantNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		code, err := u.uniqueCode(ctx, tx)
		if err != nil {
			return err
		}

		if err := tx.Tenants().UpdateCode(ctx, existing.ID, code); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		newCode = code
		return nil
	})
	if err != nil {
		return "", err
	}
	return newCode, nil
}

func (u *tenantCommandsImpl) uniqueCode(ctx context.Context, tx shared.Tx) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code, err := pubcode.Generate()
		if err != nil {
			return "", errs.Mark(err, ErrCodeGenerationExhausted)
		}
		taken, err := tx.Reads().TenantCodeExists(ctx, code)
		if err != nil {
			return "", errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeGenerationExhausted
}
