package commands

import (
	"context"
	"log/slog"

	"prize-wheel/internal/domain/point"
	"prize-wheel/internal/domain/prize"
	"prize-wheel/internal/infra"
	"prize-wheel/internal/pkg/clock"
	"prize-wheel/internal/pkg/errs"
	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity      = errs.New("quantity must be positive")
	ErrPrizeNotFound        = errs.New("prize not found")
	ErrInsufficientQuantity = errs.New("inventory entry not found or insufficient quantity")
	ErrCouponExpired        = errs.New("coupon is expired")
)

type ConsumeResult struct {
	PrizeID      uuid.UUID
	QuantityUsed int32
	Prize        *queries.PrizeView
	// AwardedPoints is set only for POINT prizes.
	AwardedPoints *int64
}

type InventoryCommands interface {
	ConsumeItem(ctx context.Context, userID, prizeID uuid.UUID, quantity int32) (*ConsumeResult, error)
}

type inventoryCommandsImpl struct {
	catalog   CatalogRepository
	inventory InventoryRepository
	points    PointLedger
	clock     clock.Clock
}

func NewInventoryCommands(
	catalog CatalogRepository,
	inventory InventoryRepository,
	points PointLedger,
	clock clock.Clock,
) InventoryCommands {
	return &inventoryCommandsImpl{
		catalog:   catalog,
		inventory: inventory,
		points:    points,
		clock:     clock,
	}
}

// ConsumeItem redeems a credited prize. Coupon expiry is re-checked against
// the live catalog record before any mutation, so an expired coupon fails
// redemption with the inventory untouched. For POINT prizes the award goes
// through the point ledger with a WHEEL cause.
func (u *inventoryCommandsImpl) ConsumeItem(ctx context.Context, userID, prizeID uuid.UUID, quantity int32) (*ConsumeResult, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	prizeDef, err := u.catalog.FindByID(ctx, prizeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPrizeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if prizeDef.HasExpiredAt(u.clock.Now()) {
		return nil, ErrCouponExpired
	}

	if _, err := u.inventory.ConditionalConsume(ctx, userID, prizeID, quantity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInsufficientQuantity
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Best-effort: a zero-quantity entry is semantically absent already.
	if err := u.inventory.PruneEmpty(ctx, userID); err != nil {
		slog.Warn("failed to prune empty inventory entries",
			"user_id", userID,
			"error", err)
	}

	result := &ConsumeResult{
		PrizeID:      prizeID,
		QuantityUsed: quantity,
		Prize:        queries.PrizeViewFromDomain(prizeDef),
	}

	if prizeDef.Kind() == prize.KindPoint {
		amount := prizeDef.Value() * int64(quantity)
		_, err := u.points.AtomicAdjust(ctx, userID, amount,
			"Reward claimed: "+prizeDef.Title().String(), point.CauseWheel)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		result.AwardedPoints = &amount
	}

	return result, nil
}
