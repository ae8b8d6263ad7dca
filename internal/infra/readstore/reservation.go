package readstore

import (
	"context"

	"turnera/internal/infra"
	"turnera/internal/infra/db"
	"turnera/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*queries.MyReservationView, error) {
	sql, args, err := qb.Select(
		"r.id", "r.slot_id", "t.name", "sv.name",
		"s.starts_at", "s.duration_min", "s.price_cents",
		"r.status", "r.created_at",
	).
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Join("services sv ON sv.id = s.service_id").
		Join("tenants t ON t.id = sv.tenant_id").
		Where(sq.Eq{"r.client_id": clientID}).
		OrderBy("s.starts_at DESC").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build client reservation select", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find client reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.MyReservationView, 0)
	for rows.Next() {
		var v queries.MyReservationView
		if err := rows.Scan(
			&v.ID, &v.SlotID, &v.TenantName, &v.ServiceName,
			&v.StartsAt, &v.DurationMin, &v.PriceCents,
			&v.Status, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan client reservation row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read client reservation rows", err)
	}
	return result, nil
}
