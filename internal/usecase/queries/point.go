package queries

import (
	"context"

	"prize-wheel/internal/pkg/errs"

	"github.com/google/uuid"
)

type PointHistoryPage struct {
	Items []PointHistoryView
	Meta  PageMeta
}

type PointReadStore interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, error)
	ListHistory(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]PointHistoryView, int64, error)
}

type PointQueries interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*PointBalanceView, error)
	ListHistory(ctx context.Context, userID uuid.UUID, page, limit int32) (*PointHistoryPage, error)
}

type pointQueriesImpl struct {
	store PointReadStore
}

func NewPointQueries(store PointReadStore) PointQueries {
	return &pointQueriesImpl{store: store}
}

func (q *pointQueriesImpl) GetBalance(ctx context.Context, userID uuid.UUID) (*PointBalanceView, error) {
	balance, err := q.store.GetBalance(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &PointBalanceView{UserID: userID, Balance: balance}, nil
}

func (q *pointQueriesImpl) ListHistory(ctx context.Context, userID uuid.UUID, page, limit int32) (*PointHistoryPage, error) {
	page, limit, offset := NormalizePagination(page, limit)

	entries, totalCount, err := q.store.ListHistory(ctx, userID, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return &PointHistoryPage{
		Items: entries,
		Meta:  NewPageMeta(page, limit, totalCount),
	}, nil
}
