//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"turnera/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	slotID := uuid.New()
	clientID := uuid.New()

	r := reservation.NewReservation(slotID, clientID, reservation.Note{})

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, slotID, r.SlotID())
	assert.Equal(t, clientID, r.ClientID())
	assert.Equal(t, reservation.StatusActive, r.Status())
	assert.True(t, r.IsActive())
	assert.Nil(t, r.CancelledAt())
}

func TestReservationCancel(t *testing.T) {
	t.Run("active reservation can be cancelled once", func(t *testing.T) {
		r := reservation.NewReservation(uuid.New(), uuid.New(), reservation.Note{})
		now := time.Now()

		require.NoError(t, r.Cancel(now))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
		assert.False(t, r.IsActive())
		require.NotNil(t, r.CancelledAt())
		assert.Equal(t, now, *r.CancelledAt())
	})

	t.Run("cancelling twice is rejected", func(t *testing.T) {
		r := reservation.NewReservation(uuid.New(), uuid.New(), reservation.Note{})
		require.NoError(t, r.Cancel(time.Now()))

		require.ErrorIs(t, r.Cancel(time.Now()), reservation.ErrAlreadyCancelled)
	})
}

func TestReconstructReservation(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := reservation.ReconstructReservation(
			uuid.New(), uuid.New(), uuid.New(),
			reservation.Status("pending"),
			reservation.Note{},
			nil,
			time.Now(), time.Now(),
		)
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("round trips a cancelled reservation", func(t *testing.T) {
		cancelledAt := time.Now()
		r, err := reservation.ReconstructReservation(
			uuid.New(), uuid.New(), uuid.New(),
			reservation.StatusCancelled,
			reservation.Note{},
			&cancelledAt,
			time.Now(), time.Now(),
		)
		require.NoError(t, err)
		assert.False(t, r.IsActive())
	})
}

func TestReservationBelongsTo(t *testing.T) {
	clientID := uuid.New()
	r := reservation.NewReservation(uuid.New(), clientID, reservation.Note{})

	assert.True(t, r.BelongsTo(clientID))
	assert.False(t, r.BelongsTo(uuid.New()))
}

func TestNote(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := reservation.NewNote("  walk-in customer  ")
		require.NoError(t, err)
		assert.Equal(t, "walk-in customer", n.String())
	})

	t.Run("empty note is valid", func(t *testing.T) {
		n, err := reservation.NewNote("")
		require.NoError(t, err)
		assert.True(t, n.IsEmpty())
	})

	t.Run("overlong note is rejected", func(t *testing.T) {
		_, err := reservation.NewNote(strings.Repeat("a", reservation.MaxNoteLength+1))
		require.ErrorIs(t, err, reservation.ErrNoteTooLong)
	})
}
