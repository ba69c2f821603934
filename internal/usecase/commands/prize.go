package commands

import (
	"context"
	"time"

	"prize-wheel/internal/domain/prize"
	"prize-wheel/internal/infra"
	"prize-wheel/internal/pkg/errs"
	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrTitleTaken       = errs.New("prize title already in use")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreatePrizeParams struct {
	Title         string
	Kind          string
	Value         int64
	StockQuantity int32
	Weight        float64
	ExpiresAt     *time.Time
	Active        bool
}

// UpdatePrizeParams patches only the supplied fields, like the admin API of
// the original catalog.
type UpdatePrizeParams struct {
	Title         *string
	Kind          *string
	Value         *int64
	StockQuantity *int32
	Weight        *float64
	ExpiresAt     *time.Time
	Active        *bool
}

type PrizeCommands interface {
	CreatePrize(ctx context.Context, params CreatePrizeParams) (*queries.PrizeView, error)
	UpdatePrize(ctx context.Context, id uuid.UUID, params UpdatePrizeParams) (*queries.PrizeView, error)
	DeletePrize(ctx context.Context, id uuid.UUID) error
}

type prizeCommandsImpl struct {
	catalog CatalogRepository
}

func NewPrizeCommands(catalog CatalogRepository) PrizeCommands {
	return &prizeCommandsImpl{catalog: catalog}
}

func (u *prizeCommandsImpl) CreatePrize(ctx context.Context, params CreatePrizeParams) (*queries.PrizeView, error) {
	entity, err := prize.NewPrize(
		params.Title,
		params.Kind,
		params.Value,
		params.StockQuantity,
		params.Weight,
		params.ExpiresAt,
		params.Active,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := u.catalog.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrTitleTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	created, err := u.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return queries.PrizeViewFromDomain(created), nil
}

func (u *prizeCommandsImpl) UpdatePrize(ctx context.Context, id uuid.UUID, params UpdatePrizeParams) (*queries.PrizeView, error) {
	existing, err := u.catalog.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPrizeNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	patched, err := applyPrizePatch(existing, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.catalog.Update(ctx, patched); err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrTitleTaken
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrPrizeNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	updated, err := u.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return queries.PrizeViewFromDomain(updated), nil
}

func (u *prizeCommandsImpl) DeletePrize(ctx context.Context, id uuid.UUID) error {
	if err := u.catalog.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrPrizeNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

// applyPrizePatch revalidates the merged state through the domain
// constructor, then rebinds the stored identity and timestamps.
func applyPrizePatch(existing *prize.Prize, params UpdatePrizeParams) (*prize.Prize, error) {
	title := existing.Title().String()
	if params.Title != nil {
		title = *params.Title
	}

	kind := existing.Kind().String()
	if params.Kind != nil {
		kind = *params.Kind
	}

	value := existing.Value()
	if params.Value != nil {
		value = *params.Value
	}

	stock := existing.StockQuantity()
	if params.StockQuantity != nil {
		stock = *params.StockQuantity
	}

	weight := existing.Weight()
	if params.Weight != nil {
		weight = *params.Weight
	}

	expiresAt := existing.ExpiresAt()
	if params.ExpiresAt != nil {
		expiresAt = params.ExpiresAt
	}
	if prize.Kind(kind) != prize.KindCoupon {
		expiresAt = nil
	}

	active := existing.IsActive()
	if params.Active != nil {
		active = *params.Active
	}

	validated, err := prize.NewPrize(title, kind, value, stock, weight, expiresAt, active)
	if err != nil {
		return nil, err
	}

	return prize.ReconstructPrize(
		existing.ID(),
		validated.Title(),
		validated.Kind(),
		validated.Value(),
		validated.StockQuantity(),
		validated.Weight(),
		validated.ExpiresAt(),
		validated.IsActive(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
	), nil
}
