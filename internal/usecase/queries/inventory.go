package queries

import (
	"context"

	"prize-wheel/internal/pkg/errs"

	"github.com/google/uuid"
)

type InventoryPage struct {
	Items []InventoryEntryView
	Meta  PageMeta
}

type InventoryReadStore interface {
	ListEntries(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]InventoryEntryView, int64, error)
}

type InventoryQueries interface {
	ListUserInventory(ctx context.Context, userID uuid.UUID, page, limit int32) (*InventoryPage, error)
}

type inventoryQueriesImpl struct {
	store InventoryReadStore
}

func NewInventoryQueries(store InventoryReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) ListUserInventory(ctx context.Context, userID uuid.UUID, page, limit int32) (*InventoryPage, error) {
	page, limit, offset := NormalizePagination(page, limit)

	entries, totalCount, err := q.store.ListEntries(ctx, userID, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &InventoryPage{
		Items: entries,
		Meta:  NewPageMeta(page, limit, totalCount),
	}, nil
}
