package components

import (
	"sessionbook/internal/handler"
	"sessionbook/internal/handler/api"
	"sessionbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewRequestHandler,
		api.NewBookingHandler,
		api.NewLedgerHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
