package components

import (
	"prize-wheel/internal/domain/wheel"
	"prize-wheel/internal/pkg/clock"
	"prize-wheel/internal/usecase/commands"
	"prize-wheel/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	wheel.NewRandDrawSource,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWheelCommands,
		commands.NewInventoryCommands,
		commands.NewPrizeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPrizeQueries,
		queries.NewInventoryQueries,
		queries.NewPointQueries,
	),
)
