package queries

import (
	"context"

	"prize-wheel/internal/domain/prize"
	"prize-wheel/internal/infra"
	"prize-wheel/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPrizeNotFound = errs.New("prize not found")
	ErrQueryFailed   = errs.New("query failed")
)

type PrizePage struct {
	Items []PrizeView
	Meta  PageMeta
}

type PrizeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*prize.Prize, error)
	List(ctx context.Context, limit, offset int32) ([]*prize.Prize, int64, error)
}

type PrizeQueries interface {
	GetPrize(ctx context.Context, id uuid.UUID) (*PrizeView, error)
	ListPrizes(ctx context.Context, page, limit int32) (*PrizePage, error)
}

type prizeQueriesImpl struct {
	store PrizeReadStore
}

func NewPrizeQueries(store PrizeReadStore) PrizeQueries {
	return &prizeQueriesImpl{store: store}
}

func (q *prizeQueriesImpl) GetPrize(ctx context.Context, id uuid.UUID) (*PrizeView, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPrizeNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	return PrizeViewFromDomain(p), nil
}

func (q *prizeQueriesImpl) ListPrizes(ctx context.Context, page, limit int32) (*PrizePage, error) {
	page, limit, offset := NormalizePagination(page, limit)

	prizes, totalCount, err := q.store.List(ctx, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	items := make([]PrizeView, 0, len(prizes))
	for _, p := range prizes {
		items = append(items, *PrizeViewFromDomain(p))
	}

	return &PrizePage{
		Items: items,
		Meta:  NewPageMeta(page, limit, totalCount),
	}, nil
}

func PrizeViewFromDomain(p *prize.Prize) *PrizeView {
	return &PrizeView{
		ID:            p.ID(),
		Title:         p.Title().String(),
		Kind:          p.Kind().String(),
		Value:         p.Value(),
		StockQuantity: p.StockQuantity(),
		Weight:        p.Weight(),
		ExpiresAt:     p.ExpiresAt(),
		Active:        p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}
