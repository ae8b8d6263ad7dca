package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

// Reservation is a client's claim on one unit of a slot's capacity.
// The only transition is active -> cancelled; a cancelled reservation is
// history, never reactivated and never physically deleted.
type Reservation struct {
	id          uuid.UUID
	slotID      uuid.UUID
	clientID    uuid.UUID
	status      Status
	note        Note
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(slotID, clientID uuid.UUID, note Note) *Reservation {
	return &Reservation{
		id:       uuid.New(),
		slotID:   slotID,
		clientID: clientID,
		status:   StatusActive,
		note:     note,
	}
}

func ReconstructReservation(
	id, slotID, clientID uuid.UUID,
	status Status,
	note Note,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:          id,
		slotID:      slotID,
		clientID:    clientID,
		status:      status,
		note:        note,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	r.status = StatusCancelled
	r.cancelledAt = &now
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) BelongsTo(clientID uuid.UUID) bool {
	return r.clientID == clientID
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) SlotID() uuid.UUID      { return r.slotID }
func (r *Reservation) ClientID() uuid.UUID    { return r.clientID }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) Note() Note             { return r.note }
func (r *Reservation) CancelledAt() *time.Time { return r.cancelledAt }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
