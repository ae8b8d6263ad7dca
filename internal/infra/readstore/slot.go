package readstore

import (
	"context"
	"time"

	"turnera/internal/infra"
	"turnera/internal/infra/db"
	"turnera/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

// FindVisitorSlots derives occupied from the active reservation count in
// the listing statement itself, so the flag and the slot row come from
// the same snapshot.
func (r *SlotReadStore) FindVisitorSlots(ctx context.Context, serviceID uuid.UUID, from time.Time) ([]*queries.VisitorSlotView, error) {
	sql, args, err := qb.Select(
		"s.id", "s.service_id", "s.starts_at", "s.duration_min", "s.price_cents",
		"count(r.id) >= s.capacity AS occupied",
	).
		From("slots s").
		LeftJoin("reservations r ON r.slot_id = s.id AND r.status = ?", "active").
		Where(sq.Eq{"s.service_id": serviceID}).
		Where(sq.GtOrEq{"s.starts_at": from}).
		GroupBy("s.id", "s.service_id", "s.starts_at", "s.duration_min", "s.price_cents", "s.capacity").
		OrderBy("s.starts_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build visitor slot select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find visitor slots", err)
	}
	defer rows.Close()

	result := make([]*queries.VisitorSlotView, 0)
	for rows.Next() {
		var v queries.VisitorSlotView
		if err := rows.Scan(&v.ID, &v.ServiceID, &v.StartsAt, &v.DurationMin, &v.PriceCents, &v.Occupied); err != nil {
			return nil, infra.WrapRepoErr("failed to scan visitor slot row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read visitor slot rows", err)
	}
	return result, nil
}

func (r *SlotReadStore) FindAgenda(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*queries.AgendaSlotView, error) {
	slots, err := r.findAgendaSlots(ctx, tenantID, from, to)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return slots, nil
	}

	ids := make([]uuid.UUID, len(slots))
	index := make(map[uuid.UUID]*queries.AgendaSlotView, len(slots))
	for i, s := range slots {
		ids[i] = s.ID
		index[s.ID] = s
	}

	sql, args, err := qb.Select("id", "slot_id", "client_id", "status", "note", "created_at").
		From("reservations").
		Where(sq.Eq{"slot_id": ids}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build agenda reservation select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find agenda reservations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			v      queries.AgendaReservationView
			slotID uuid.UUID
		)
		if err := rows.Scan(&v.ID, &slotID, &v.ClientID, &v.Status, &v.Note, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan agenda reservation row", err)
		}
		if s, ok := index[slotID]; ok {
			s.Reservations = append(s.Reservations, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read agenda reservation rows", err)
	}
	return slots, nil
}

func (r *SlotReadStore) findAgendaSlots(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*queries.AgendaSlotView, error) {
	sql, args, err := qb.Select(
		"s.id", "s.service_id", "sv.name", "s.starts_at", "s.duration_min", "s.capacity", "s.price_cents",
	).
		From("slots s").
		Join("services sv ON sv.id = s.service_id").
		Where(sq.Eq{"sv.tenant_id": tenantID}).
		Where(sq.GtOrEq{"s.starts_at": from}).
		Where(sq.Lt{"s.starts_at": to}).
		OrderBy("s.starts_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build agenda slot select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find agenda slots", err)
	}
	defer rows.Close()

	result := make([]*queries.AgendaSlotView, 0)
	for rows.Next() {
		v := queries.AgendaSlotView{Reservations: make([]queries.AgendaReservationView, 0)}
		if err := rows.Scan(&v.ID, &v.ServiceID, &v.ServiceName, &v.StartsAt, &v.DurationMin, &v.Capacity, &v.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan agenda slot row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read agenda slot rows", err)
	}
	return result, nil
}
