package components

import (
	"turnera/internal/handler"
	"turnera/internal/handler/api"
	"turnera/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTenantHandler,
		api.NewScheduleHandler,
		api.NewServiceHandler,
		api.NewSlotHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
