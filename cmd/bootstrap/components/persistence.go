package components

import (
	"prize-wheel/internal/infra/db"
	"prize-wheel/internal/infra/repository"
	"prize-wheel/internal/usecase/commands"
	"prize-wheel/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Prize catalog
		fx.Annotate(
			repository.NewPrizeRepository,
			fx.As(new(commands.CatalogRepository)),
			fx.As(new(queries.PrizeReadStore)),
		),
		// Inventory
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(commands.InventoryRepository)),
			fx.As(new(queries.InventoryReadStore)),
		),
		// Point ledger
		fx.Annotate(
			repository.NewPointRepository,
			fx.As(new(commands.PointLedger)),
			fx.As(new(queries.PointReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
