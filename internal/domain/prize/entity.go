package prize

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeValue   = errors.New("prize value cannot be negative")
	ErrNegativeStock   = errors.New("stock quantity cannot be negative")
	ErrNegativeWeight  = errors.New("weight cannot be negative")
	ErrCouponNoExpiry  = errors.New("coupon prize requires an expiry")
	ErrExpiryNonCoupon = errors.New("only coupon prizes carry an expiry")
)

// Prize is a catalog definition: what can be won, how likely, and how much
// stock remains. Stock is only ever decremented through the repository's
// conditional update, never through this entity.
type Prize struct {
	id            uuid.UUID
	title         Title
	kind          Kind
	value         int64
	stockQuantity int32
	weight        float64
	expiresAt     *time.Time
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPrize(
	title string,
	kind string,
	value int64,
	stockQuantity int32,
	weight float64,
	expiresAt *time.Time,
	active bool,
) (*Prize, error) {
	prizeTitle, err := NewTitle(title)
	if err != nil {
		return nil, err
	}

	prizeKind, err := NewKind(kind)
	if err != nil {
		return nil, err
	}

	if value < 0 {
		return nil, ErrNegativeValue
	}
	if stockQuantity < 0 {
		return nil, ErrNegativeStock
	}
	if weight < 0 {
		return nil, ErrNegativeWeight
	}

	if prizeKind == KindCoupon && expiresAt == nil {
		return nil, ErrCouponNoExpiry
	}
	if prizeKind != KindCoupon && expiresAt != nil {
		return nil, ErrExpiryNonCoupon
	}

	return &Prize{
		id:            uuid.New(),
		title:         prizeTitle,
		kind:          prizeKind,
		value:         value,
		stockQuantity: stockQuantity,
		weight:        weight,
		expiresAt:     expiresAt,
		active:        active,
	}, nil
}

func ReconstructPrize(
	id uuid.UUID,
	title Title,
	kind Kind,
	value int64,
	stockQuantity int32,
	weight float64,
	expiresAt *time.Time,
	active bool,
	createdAt, updatedAt time.Time,
) *Prize {
	return &Prize{
		id:            id,
		title:         title,
		kind:          kind,
		value:         value,
		stockQuantity: stockQuantity,
		weight:        weight,
		expiresAt:     expiresAt,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// IsEligibleAt reports whether the prize can be offered on a spin: active,
// positive weight, stock remaining, and for coupons an unexpired expiry.
func (p *Prize) IsEligibleAt(now time.Time) bool {
	if !p.active {
		return false
	}
	if p.weight <= 0 {
		return false
	}
	if p.stockQuantity <= 0 {
		return false
	}
	if p.kind == KindCoupon {
		if p.expiresAt == nil || !p.expiresAt.After(now) {
			return false
		}
	}
	return true
}

func (p *Prize) HasExpiredAt(now time.Time) bool {
	return p.kind == KindCoupon && p.expiresAt != nil && !p.expiresAt.After(now)
}

func (p *Prize) ID() uuid.UUID         { return p.id }
func (p *Prize) Title() Title          { return p.title }
func (p *Prize) Kind() Kind            { return p.kind }
func (p *Prize) Value() int64          { return p.value }
func (p *Prize) StockQuantity() int32  { return p.stockQuantity }
func (p *Prize) Weight() float64       { return p.weight }
func (p *Prize) ExpiresAt() *time.Time { return p.expiresAt }
func (p *Prize) IsActive() bool        { return p.active }
func (p *Prize) CreatedAt() time.Time  { return p.createdAt }
func (p *Prize) UpdatedAt() time.Time  { return p.updatedAt }
