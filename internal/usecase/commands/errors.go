package commands

import "turnera/internal/pkg/errs"

// Engine error taxonomy. Validation failures are detected before any
// write; CapacityExceeded and DuplicateActiveReservation may also be
// detected at commit time, and callers cannot tell a pre-check failure
// from a lost race. Both need the same remedy.
var (
	ErrInvalidTimeBlock            = errs.New("invalid time block")
	ErrTenantNotFound              = errs.New("tenant not found")
	ErrServiceNotFound             = errs.New("service not found")
	ErrServiceInUse                = errs.New("service has active reservations")
	ErrOutsideWorkingHours         = errs.New("start time is outside working hours")
	ErrSlotNotFound                = errs.New("slot not found")
	ErrSlotAlreadyExists           = errs.New("slot already exists for this start time")
	ErrSlotInUse                   = errs.New("slot has active reservations")
	ErrCapacityExceeded            = errs.New("slot capacity exceeded")
	ErrDuplicateActiveReservation  = errs.New("client already holds an active reservation with this tenant")
	ErrReservationNotFound         = errs.New("reservation not found")
	ErrReservationAlreadyCancelled = errs.New("reservation is already cancelled")
	ErrUnauthorized                = errs.New("caller is not allowed to perform this operation")
	ErrDomainValidation            = errs.New("domain validation error")
	ErrCodeGenerationExhausted     = errs.New("could not generate a unique public code")
	ErrDatabaseOperationFailed     = errs.New("database operation failed")
)
