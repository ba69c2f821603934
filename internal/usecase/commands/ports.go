package commands

import (
	"context"
	"time"

	"prize-wheel/internal/domain/point"
	"prize-wheel/internal/domain/prize"
	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in infra/repository; every method
// maps to a single conditional statement (or one short transaction for the
// point ledger), which is the only synchronization the usecases rely on.

type CatalogRepository interface {
	Create(ctx context.Context, p *prize.Prize) (uuid.UUID, error)
	Update(ctx context.Context, p *prize.Prize) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*prize.Prize, error)
	FindActive(ctx context.Context) ([]*prize.Prize, error)
	// DecrementStock re-checks eligibility at write time and reports
	// KindNotFound when another spin got there first.
	DecrementStock(ctx context.Context, id uuid.UUID, now time.Time) (*prize.Prize, error)
}

type InventoryRepository interface {
	Credit(ctx context.Context, userID, prizeID uuid.UUID, quantity int32, expiresAt *time.Time) error
	ConditionalConsume(ctx context.Context, userID, prizeID uuid.UUID, quantity int32) (*queries.InventoryEntryView, error)
	PruneEmpty(ctx context.Context, userID uuid.UUID) error
}

type PointLedger interface {
	AtomicAdjust(ctx context.Context, userID uuid.UUID, amount int64, description string, cause point.Cause) (*queries.PointHistoryView, error)
}
