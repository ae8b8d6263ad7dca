package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SlotQueries interface {
	// VisitorSlots lists a service's upcoming slots for anonymous
	// browsing. Each row carries occupied computed against capacity in
	// the same statement as the listing, so a row never reports a count
	// taken at a different instant than the slot it describes.
	VisitorSlots(ctx context.Context, serviceID uuid.UUID, from time.Time) ([]*VisitorSlotView, error)
	// OwnerAgenda lists the tenant's slots in [from, to) together with
	// their reservations, including client identities.
	OwnerAgenda(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*AgendaSlotView, error)
}

type SlotViewRepo interface {
	FindVisitorSlots(ctx context.Context, serviceID uuid.UUID, from time.Time) ([]*VisitorSlotView, error)
	FindAgenda(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*AgendaSlotView, error)
}

type slotQueriesImpl struct {
	repo SlotViewRepo
}

func NewSlotQueries(repo SlotViewRepo) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) VisitorSlots(ctx context.Context, serviceID uuid.UUID, from time.Time) ([]*VisitorSlotView, error) {
	return q.repo.FindVisitorSlots(ctx, serviceID, from)
}

func (q *slotQueriesImpl) OwnerAgenda(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*AgendaSlotView, error) {
	if to.IsZero() {
		to = from.AddDate(0, 0, 7)
	}
	return q.repo.FindAgenda(ctx, tenantID, from, to)
}
