package components

import (
	"turnera/internal/pkg/clock"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTenantCommands,
		commands.NewScheduleCommands,
		commands.NewServiceCommands,
		commands.NewSlotCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTenantQueries,
		queries.NewScheduleQueries,
		queries.NewServiceQueries,
		queries.NewSlotQueries,
		queries.NewReservationQueries,
	),
)
