package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyServiceName    = errors.New("service name cannot be empty")
	ErrServiceNameTooLong  = errors.New("service name is too long (max 255 characters)")
	ErrNonPositiveDuration = errors.New("service duration must be positive")
	ErrNegativePrice       = errors.New("service price cannot be negative")
)

const MaxServiceNameLength = 255

// Service is an offering a tenant publishes: a name, how long one
// appointment takes and what it costs. Slots freeze duration and price
// at creation, so editing a service never rewrites already-published slots.
type Service struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	name        string
	description string
	durationMin int
	priceCents  int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(tenantID uuid.UUID, name, description string, durationMin int, priceCents int64) (*Service, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, durationMin, priceCents); err != nil {
		return nil, err
	}

	return &Service{
		id:          uuid.New(),
		tenantID:    tenantID,
		name:        name,
		description: strings.TrimSpace(description),
		durationMin: durationMin,
		priceCents:  priceCents,
	}, nil
}

func ReconstructService(
	id, tenantID uuid.UUID,
	name, description string,
	durationMin int,
	priceCents int64,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		tenantID:    tenantID,
		name:        name,
		description: description,
		durationMin: durationMin,
		priceCents:  priceCents,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) Rename(name, description string) error {
	name = strings.TrimSpace(name)
	if err := validate(name, s.durationMin, s.priceCents); err != nil {
		return err
	}
	s.name = name
	s.description = strings.TrimSpace(description)
	return nil
}

func (s *Service) Reprice(durationMin int, priceCents int64) error {
	if err := validate(s.name, durationMin, priceCents); err != nil {
		return err
	}
	s.durationMin = durationMin
	s.priceCents = priceCents
	return nil
}

func validate(name string, durationMin int, priceCents int64) error {
	if name == "" {
		return ErrEmptyServiceName
	}
	if len(name) > MaxServiceNameLength {
		return ErrServiceNameTooLong
	}
	if durationMin <= 0 {
		return ErrNonPositiveDuration
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) TenantID() uuid.UUID  { return s.tenantID }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) DurationMin() int     { return s.durationMin }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
