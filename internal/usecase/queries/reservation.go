package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	ByClient(ctx context.Context, clientID uuid.UUID) ([]*MyReservationView, error)
}

type ReservationViewRepo interface {
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*MyReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) ByClient(ctx context.Context, clientID uuid.UUID) ([]*MyReservationView, error) {
	return q.repo.FindByClient(ctx, clientID)
}
