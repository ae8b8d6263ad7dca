package components

import (
	"turnera/internal/infra/db"
	"turnera/internal/infra/readstore"
	"turnera/internal/infra/uow"
	"turnera/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork owns the write side; each transaction builds its own
		// repositories on the transaction connection.
		uow.NewPostgresUoW,
		// Read-side stores run on the pool directly.
		fx.Annotate(
			readstore.NewTenantReadStore,
			fx.As(new(queries.TenantViewRepo)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleViewRepo)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceViewRepo)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(queries.SlotViewRepo)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
