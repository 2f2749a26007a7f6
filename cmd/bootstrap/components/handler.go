package components

import (
	"petsitter-booking/internal/handler"
	"petsitter-booking/internal/handler/api"
	"petsitter-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewSessionHandler,
		api.NewAdminHandler,
		handler.NewHandlers,
		middleware.NewSubmitLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
