package request

import "time"

type CreatePrizeRequest struct {
	Title         string     `json:"title" binding:"required"`
	Kind          string     `json:"kind" binding:"required,oneof=CASH COUPON POINT"`
	Value         int64      `json:"value" binding:"min=0"`
	StockQuantity int32      `json:"stock_quantity" binding:"min=0"`
	Weight        float64    `json:"weight" binding:"min=0"`
	ExpiresAt     *time.Time `json:"expires_at"`
	Active        *bool      `json:"active"`
}

// IsActive defaults omitted active to true, matching catalog create semantics.
func (r *CreatePrizeRequest) IsActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}

type UpdatePrizeRequest struct {
	Title         *string    `json:"title"`
	Kind          *string    `json:"kind" binding:"omitempty,oneof=CASH COUPON POINT"`
	Value         *int64     `json:"value" binding:"omitempty,min=0"`
	StockQuantity *int32     `json:"stock_quantity" binding:"omitempty,min=0"`
	Weight        *float64   `json:"weight" binding:"omitempty,min=0"`
	ExpiresAt     *time.Time `json:"expires_at"`
	Active        *bool      `json:"active"`
}
