package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models returned across the query boundary. Handlers shape these into
// response DTOs; the write side never depends on them.

type PrizeView struct {
	ID            uuid.UUID
	Title         string
	Kind          string
	Value         int64
	StockQuantity int32
	Weight        float64
	ExpiresAt     *time.Time
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type InventoryEntryView struct {
	PrizeID   uuid.UUID
	Quantity  int32
	ExpiresAt *time.Time
	// Prize is nil when the catalog definition has been deleted since the
	// entry was credited.
	Prize *PrizeView
}

type PointBalanceView struct {
	UserID  uuid.UUID
	Balance int64
}

type PointHistoryView struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
	Description   string
	Cause         string
	CreatedAt     time.Time
}

type PageMeta struct {
	Page       int32
	Limit      int32
	TotalCount int64
	TotalPages int32
}

func NewPageMeta(page, limit int32, totalCount int64) PageMeta {
	totalPages := int32(0)
	if limit > 0 {
		totalPages = int32((totalCount + int64(limit) - 1) / int64(limit))
	}
	return PageMeta{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
