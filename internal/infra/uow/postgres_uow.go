package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"log/slog"
	"time"

	"turnera/internal/infra"
	"turnera/internal/infra/db"
	"turnera/internal/infra/repository"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
	errRetryExhausted    = errs.New("transaction failed after retry")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted is enough: all check-then-insert sequences run under
// explicit row or advisory locks rather than snapshot isolation.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Transient store failures are retried once before surfacing; retrying
// re-runs fn from scratch in a fresh transaction.
// Avoids defer accumulation in the retry loop to prevent connection leaks.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 1
	base := 50 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) || attempt == maxRetries {
			if isRetryableError(err) {
				slog.Error("transaction failed after retry", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errRetryExhausted)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errRetryExhausted
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
			return true
		}
	}
	return infra.IsKind(err, infra.KindLockTimeout)
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	tenantRepo       shared.TenantRepository
	serviceRepo      shared.ServiceRepository
	workingHoursRepo shared.WorkingHoursRepository
	slotRepo         shared.SlotRepository
	reservationRepo  shared.ReservationRepository
	locks            shared.Locks
	commandReads     shared.CommandReads
}

func (t *pgTx) Tenants() shared.TenantRepository {
	if t.tenantRepo == nil {
		t.tenantRepo = repository.NewTenantRepository(t.dbtx)
	}
	return t.tenantRepo
}

func (t *pgTx) Services() shared.ServiceRepository {
	if t.serviceRepo == nil {
		t.serviceRepo = repository.NewServiceRepository(t.dbtx)
	}
	return t.serviceRepo
}

func (t *pgTx) WorkingHours() shared.WorkingHoursRepository {
	if t.workingHoursRepo == nil {
		t.workingHoursRepo = repository.NewWorkingHoursRepository(t.dbtx)
	}
	return t.workingHoursRepo
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.dbtx)
	}
	return t.slotRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Locks() shared.Locks {
	if t.locks == nil {
		t.locks = &advisoryLocks{dbtx: t.dbtx}
	}
	return t.locks
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type advisoryLocks struct {
	dbtx db.DBTX
}

// ClientTenant takes a transaction-scoped advisory lock keyed on the
// (client, tenant) pair. Callers acquire it only while already holding
// a slot row lock, keeping a single lock order across the system.
func (l *advisoryLocks) ClientTenant(ctx context.Context, clientID, tenantID uuid.UUID) error {
	if _, err := l.dbtx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", pairLockKey(clientID, tenantID)); err != nil {
		return infra.WrapRepoErr("failed to acquire client-tenant lock", err)
	}
	return nil
}

func pairLockKey(a, b uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(a[:])
	h.Write(b[:])
	// Postgres advisory lock keys are signed bigints.
	return int64(h.Sum64())
}
