package repository

import (
	"context"
	"time"

	"turnera/internal/domain/reservation"
	"turnera/internal/infra"
	"turnera/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	sql, args, err := qb.Insert("reservations").
		Columns("id", "slot_id", "client_id", "status", "note").
		Values(res.ID(), res.SlotID(), res.ClientID(), res.Status().String(), res.Note().String()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error {
	sql, args, err := qb.Update("reservations").
		Set("status", reservation.StatusCancelled.String()).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "status": reservation.StatusActive.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build reservation cancel", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("active reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) CancelAllActiveBySlot(ctx context.Context, slotID uuid.UUID, cancelledAt time.Time) error {
	sql, args, err := qb.Update("reservations").
		Set("status", reservation.StatusCancelled.String()).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"slot_id": slotID, "status": reservation.StatusActive.String()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build bulk reservation cancel", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return infra.WrapRepoErr("failed to cancel slot reservations", err)
	}
	return nil
}
