package tenant

import (
	"errors"
	"strings"
	"time"

	"turnera/internal/pkg/pubcode"

	"github.com/google/uuid"
)

var (
	ErrEmptyBusinessName   = errors.New("business name cannot be empty")
	ErrBusinessNameTooLong = errors.New("business name is too long (max 255 characters)")
	ErrInvalidTimezone     = errors.New("invalid timezone")
	ErrMalformedCode       = errors.New("malformed public code")
)

const MaxBusinessNameLength = 255

// Tenant is a service provider publishing availability under a public
// lookup code. The code is unique and immutable until regenerated, at
// which point the old one is permanently invalid.
type Tenant struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	code        string
	name        string
	description string
	timezone    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTenant(ownerID uuid.UUID, code, name, description, timezone string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !pubcode.IsWellFormed(code) {
		return nil, ErrMalformedCode
	}
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, ErrInvalidTimezone
	}

	return &Tenant{
		id:          uuid.New(),
		ownerID:     ownerID,
		code:        code,
		name:        name,
		description: strings.TrimSpace(description),
		timezone:    timezone,
	}, nil
}

func ReconstructTenant(
	id, ownerID uuid.UUID,
	code, name, description, timezone string,
	createdAt, updatedAt time.Time,
) *Tenant {
	return &Tenant{
		id:          id,
		ownerID:     ownerID,
		code:        code,
		name:        name,
		description: description,
		timezone:    timezone,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Tenant) IsOwnedBy(callerID uuid.UUID) bool {
	return t.ownerID == callerID
}

// Location resolves the tenant's canonical zone. The zone was validated
// at creation; a record predating that validation falls back to UTC.
func (t *Tenant) Location() *time.Location {
	loc, err := time.LoadLocation(t.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyBusinessName
	}
	if len(name) > MaxBusinessNameLength {
		return ErrBusinessNameTooLong
	}
	return nil
}

func (t *Tenant) ID() uuid.UUID        { return t.id }
func (t *Tenant) OwnerID() uuid.UUID   { return t.ownerID }
func (t *Tenant) Code() string         { return t.code }
func (t *Tenant) Name() string         { return t.name }
func (t *Tenant) Description() string  { return t.description }
func (t *Tenant) Timezone() string     { return t.timezone }
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time { return t.updatedAt }
