package response

import (
	"time"

	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PrizeResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Kind          string     `json:"kind"`
	Value         int64      `json:"value"`
	StockQuantity int32      `json:"stock_quantity"`
	Weight        float64    `json:"weight"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func FromPrizeView(view *queries.PrizeView) *PrizeResponse {
	if view == nil {
		return nil
	}
	var resp PrizeResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

type PrizeListResponse struct {
	Items []PrizeResponse  `json:"items"`
	Meta  PageMetaResponse `json:"meta"`
}

func FromPrizePage(page *queries.PrizePage) *PrizeListResponse {
	items := make([]PrizeResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *FromPrizeView(&page.Items[i]))
	}
	return &PrizeListResponse{
		Items: items,
		Meta:  FromPageMeta(page.Meta),
	}
}
