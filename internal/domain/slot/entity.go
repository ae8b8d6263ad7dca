package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrZeroStart           = errors.New("slot start must be set")
	ErrNonPositiveDuration = errors.New("slot duration must be positive")
	ErrCapacityTooSmall    = errors.New("slot capacity must be at least 1")
	ErrNegativePrice       = errors.New("slot price cannot be negative")
	ErrCapacityBelowActive = errors.New("capacity cannot drop below active reservations")
)

// Slot is a concrete bookable instance of a service at one start instant.
// Duration and price are copied from the service when the slot is created
// and frozen from then on; later service edits do not leak into it.
// Occupancy is never stored here, it is derived from reservation counts.
type Slot struct {
	id          uuid.UUID
	serviceID   uuid.UUID
	startsAt    time.Time
	durationMin int
	capacity    int
	priceCents  int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSlot(serviceID uuid.UUID, startsAt time.Time, durationMin, capacity int, priceCents int64) (*Slot, error) {
	if startsAt.IsZero() {
		return nil, ErrZeroStart
	}
	if durationMin <= 0 {
		return nil, ErrNonPositiveDuration
	}
	if capacity < 1 {
		return nil, ErrCapacityTooSmall
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Slot{
		id:          uuid.New(),
		serviceID:   serviceID,
		startsAt:    startsAt.UTC(),
		durationMin: durationMin,
		capacity:    capacity,
		priceCents:  priceCents,
	}, nil
}

func ReconstructSlot(
	id, serviceID uuid.UUID,
	startsAt time.Time,
	durationMin, capacity int,
	priceCents int64,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		serviceID:   serviceID,
		startsAt:    startsAt,
		durationMin: durationMin,
		capacity:    capacity,
		priceCents:  priceCents,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Slot) EndsAt() time.Time {
	return s.startsAt.Add(time.Duration(s.durationMin) * time.Minute)
}

func (s *Slot) IsFuture(now time.Time) bool {
	return !s.startsAt.Before(now)
}

// HasRoom is the derived-occupancy rule: a slot is occupied once the
// count of active reservations reaches its capacity.
func (s *Slot) HasRoom(activeReservations int) bool {
	return activeReservations < s.capacity
}

func (s *Slot) Reschedule(startsAt time.Time) error {
	if startsAt.IsZero() {
		return ErrZeroStart
	}
	s.startsAt = startsAt.UTC()
	return nil
}

// Resize keeps capacity >= the number of reservations already held.
func (s *Slot) Resize(capacity, activeReservations int) error {
	if capacity < 1 {
		return ErrCapacityTooSmall
	}
	if capacity < activeReservations {
		return ErrCapacityBelowActive
	}
	s.capacity = capacity
	return nil
}

func (s *Slot) Reprice(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativePrice
	}
	s.priceCents = priceCents
	return nil
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) ServiceID() uuid.UUID { return s.serviceID }
func (s *Slot) StartsAt() time.Time  { return s.startsAt }
func (s *Slot) DurationMin() int     { return s.durationMin }
func (s *Slot) Capacity() int        { return s.capacity }
func (s *Slot) PriceCents() int64    { return s.priceCents }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
