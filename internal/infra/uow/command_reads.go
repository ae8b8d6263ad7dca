package uow

import (
	"context"
	"time"

	"turnera/internal/domain/schedule"
	"turnera/internal/infra"
	"turnera/internal/infra/db"
	"turnera/internal/pkg/pgconv"
	"turnera/internal/usecase/shared"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// commandReads serves the snapshots commands validate against. All
// queries run on the transaction's connection so they observe its locks.
type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) TenantByID(ctx context.Context, id uuid.UUID) (*shared.TenantSnapshot, error) {
	return r.tenantBy(ctx, sq.Eq{"id": id})
}

func (r *commandReads) TenantByOwner(ctx context.Context, ownerID uuid.UUID) (*shared.TenantSnapshot, error) {
	return r.tenantBy(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *commandReads) tenantBy(ctx context.Context, pred sq.Eq) (*shared.TenantSnapshot, error) {
	sql, args, err := qb.Select("id", "owner_id", "code", "name", "description", "timezone").
		From("tenants").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build tenant snapshot select", err)
	}

	var snap shared.TenantSnapshot
	row := r.dbtx.QueryRow(ctx, sql, args...)
	if err := row.Scan(&snap.ID, &snap.OwnerID, &snap.Code, &snap.Name, &snap.Description, &snap.Timezone); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tenant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read tenant snapshot", err)
	}
	return &snap, nil
}

func (r *commandReads) TenantCodeExists(ctx context.Context, code string) (bool, error) {
	sql, args, err := qb.Select("1").
		From("tenants").
		Where(sq.Eq{"code": code}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build tenant code select", err)
	}

	var exists bool
	if err := r.dbtx.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check tenant code", err)
	}
	return exists, nil
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	sql, args, err := qb.Select("id", "tenant_id", "name", "description", "duration_min", "price_cents").
		From("services").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build service snapshot select", err)
	}

	var snap shared.ServiceSnapshot
	row := r.dbtx.QueryRow(ctx, sql, args...)
	if err := row.Scan(&snap.ID, &snap.TenantID, &snap.Name, &snap.Description, &snap.DurationMin, &snap.PriceCents); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read service snapshot", err)
	}
	return &snap, nil
}

func (r *commandReads) ServiceHasActiveReservations(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	sql, args, err := qb.Select("1").
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Where(sq.Eq{"s.service_id": serviceID, "r.status": "active"}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build service usage select", err)
	}

	var exists bool
	if err := r.dbtx.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check service usage", err)
	}
	return exists, nil
}

func (r *commandReads) WeekByTenant(ctx context.Context, tenantID uuid.UUID) (schedule.Week, error) {
	sql, args, err := qb.Select("weekday", "start_min", "end_min").
		From("working_hours").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("weekday", "start_min").
		ToSql()
	if err != nil {
		return schedule.Week{}, infra.WrapRepoErr("failed to build week select", err)
	}

	rows, err := r.dbtx.Query(ctx, sql, args...)
	if err != nil {
		return schedule.Week{}, infra.WrapRepoErr("failed to read week", err)
	}
	defer rows.Close()

	var blocks []schedule.Block
	for rows.Next() {
		var weekday, startMin, endMin int
		if err := rows.Scan(&weekday, &startMin, &endMin); err != nil {
			return schedule.Week{}, infra.WrapRepoErr("failed to scan week row", err)
		}
		block, err := blockFromRow(weekday, startMin, endMin)
		if err != nil {
			return schedule.Week{}, infra.WrapRepoErr("stored working hours are invalid", err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return schedule.Week{}, infra.WrapRepoErr("failed to read week rows", err)
	}

	week, err := schedule.NewWeek(blocks)
	if err != nil {
		return schedule.Week{}, infra.WrapRepoErr("stored working hours are invalid", err)
	}
	return week, nil
}

func blockFromRow(weekday, startMin, endMin int) (schedule.Block, error) {
	start, err := schedule.NewTimeOfDay(startMin/60, startMin%60)
	if err != nil {
		return schedule.Block{}, err
	}
	end, err := schedule.NewTimeOfDay(endMin/60, endMin%60)
	if err != nil {
		return schedule.Block{}, err
	}
	return schedule.NewBlock(time.Weekday(weekday), start, end)
}

func (r *commandReads) SlotByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	return r.slotBy(ctx, sq.Eq{"s.id": id}, true)
}

func (r *commandReads) SlotByServiceStart(ctx context.Context, serviceID uuid.UUID, startsAt time.Time) (*shared.SlotSnapshot, error) {
	return r.slotBy(ctx, sq.Eq{"s.service_id": serviceID, "s.starts_at": startsAt}, false)
}

func (r *commandReads) slotBy(ctx context.Context, pred sq.Eq, forUpdate bool) (*shared.SlotSnapshot, error) {
	builder := qb.Select(
		"s.id", "s.service_id", "sv.tenant_id",
		"s.starts_at", "s.duration_min", "s.capacity", "s.price_cents",
	).
		From("slots s").
		Join("services sv ON sv.id = s.service_id").
		Where(pred)
	if forUpdate {
		// Lock only the slot row; the service row stays shared.
		builder = builder.Suffix("FOR UPDATE OF s")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build slot snapshot select", err)
	}

	var snap shared.SlotSnapshot
	row := r.dbtx.QueryRow(ctx, sql, args...)
	if err := row.Scan(&snap.ID, &snap.ServiceID, &snap.TenantID, &snap.StartsAt, &snap.DurationMin, &snap.Capacity, &snap.PriceCents); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read slot snapshot", err)
	}
	return &snap, nil
}

func (r *commandReads) ActiveReservationCount(ctx context.Context, slotID uuid.UUID) (int, error) {
	sql, args, err := qb.Select("count(*)").
		From("reservations").
		Where(sq.Eq{"slot_id": slotID, "status": "active"}).
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build reservation count select", err)
	}

	var count int
	if err := r.dbtx.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations", err)
	}
	return count, nil
}

func (r *commandReads) HasActiveFutureReservation(ctx context.Context, clientID, tenantID uuid.UUID, now time.Time) (bool, error) {
	sql, args, err := qb.Select("1").
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Join("services sv ON sv.id = s.service_id").
		Where(sq.Eq{"r.client_id": clientID, "sv.tenant_id": tenantID, "r.status": "active"}).
		Where(sq.GtOrEq{"s.starts_at": now}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, infra.WrapRepoErr("failed to build duplicate reservation select", err)
	}

	var exists bool
	if err := r.dbtx.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check duplicate reservation", err)
	}
	return exists, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	sql, args, err := qb.Select(
		"r.id", "r.slot_id", "r.client_id", "sv.tenant_id", "r.status", "s.starts_at",
	).
		From("reservations r").
		Join("slots s ON s.id = r.slot_id").
		Join("services sv ON sv.id = s.service_id").
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation snapshot select", err)
	}

	var snap shared.ReservationSnapshot
	row := r.dbtx.QueryRow(ctx, sql, args...)
	if err := row.Scan(&snap.ID, &snap.SlotID, &snap.ClientID, &snap.TenantID, &snap.Status, &snap.SlotStartsAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read reservation snapshot", err)
	}
	return &snap, nil
}
