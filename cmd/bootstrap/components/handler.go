package components

import (
	"prize-wheel/internal/handler"
	"prize-wheel/internal/handler/api"
	"prize-wheel/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWheelHandler,
		api.NewInventoryHandler,
		api.NewPointHandler,
		api.NewPrizeHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
