package bootstrap

import (
	"shadow-events-cli/internal/stubapi"
	"shadow-events-cli/internal/stubapi/handler"
	"shadow-events-cli/internal/stubapi/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		handler.NewAuthHandler,
		handler.NewEventsHandler,
		handler.NewBookingsHandler,
		handler.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(stubapi.NewRouter),
)
