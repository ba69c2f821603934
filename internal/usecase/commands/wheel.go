package commands

import (
	"context"
	"log/slog"
	"time"

	"prize-wheel/internal/domain/prize"
	"prize-wheel/internal/domain/wheel"
	"prize-wheel/internal/infra"
	"prize-wheel/internal/pkg/clock"
	"prize-wheel/internal/pkg/errs"
	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	// maxSpinAttempts bounds the retry loop around lost decrement races.
	// Exhaustion degrades to a lose, never an error.
	maxSpinAttempts = 3

	loseMessage = "Better luck next time"
)

var (
	ErrInvalidUserID           = errs.New("invalid user id")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SpinResult struct {
	Won     bool
	Message string
	Prize   *queries.PrizeView
}

type WheelCommands interface {
	Spin(ctx context.Context, userID uuid.UUID) (*SpinResult, error)
}

type wheelCommandsImpl struct {
	catalog   CatalogRepository
	inventory InventoryRepository
	draws     wheel.DrawSource
	clock     clock.Clock
}

func NewWheelCommands(
	catalog CatalogRepository,
	inventory InventoryRepository,
	draws wheel.DrawSource,
	clock clock.Clock,
) WheelCommands {
	return &wheelCommandsImpl{
		catalog:   catalog,
		inventory: inventory,
		draws:     draws,
		clock:     clock,
	}
}

// Spin runs the allocate-with-retry protocol: select from a fresh catalog
// snapshot, then attempt the conditional decrement. A lost race consumes one
// attempt and restarts from a re-read; a win credits the user's inventory
// with the decremented prize.
func (w *wheelCommandsImpl) Spin(ctx context.Context, userID uuid.UUID) (*SpinResult, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	for attempt := 0; attempt < maxSpinAttempts; attempt++ {
		candidates, err := w.catalog.FindActive(ctx)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		now := w.clock.Now()
		eligible := make([]*prize.Prize, 0, len(candidates))
		for _, p := range candidates {
			if p.IsEligibleAt(now) {
				eligible = append(eligible, p)
			}
		}

		picked := wheel.Pick(eligible, w.draws.Draw())
		if picked == nil {
			return loseResult(), nil
		}

		won, err := w.catalog.DecrementStock(ctx, picked.ID(), now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Lost the race: someone else took the last unit or the
				// prize was invalidated between read and write.
				continue
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		var expiresAt *time.Time
		if won.Kind() == prize.KindCoupon {
			expiresAt = won.ExpiresAt()
		}

		if err := w.inventory.Credit(ctx, userID, won.ID(), 1, expiresAt); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return &SpinResult{
			Won:     true,
			Message: "You won: " + won.Title().String(),
			Prize:   queries.PrizeViewFromDomain(won),
		}, nil
	}

	slog.Warn("spin contention exhausted, reporting lose",
		"user_id", userID,
		"attempts", maxSpinAttempts)

	return loseResult(), nil
}

func loseResult() *SpinResult {
	return &SpinResult{
		Won:     false,
		Message: loseMessage,
	}
}
