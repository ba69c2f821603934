package response

import (
	"time"

	"prize-wheel/internal/usecase/commands"
	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
)

type InventoryItemResponse struct {
	PrizeID   uuid.UUID      `json:"prize_id"`
	Quantity  int32          `json:"quantity"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	Prize     *PrizeResponse `json:"prize,omitempty"`
}

type InventoryListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Meta  PageMetaResponse        `json:"meta"`
}

func FromInventoryPage(page *queries.InventoryPage) *InventoryListResponse {
	items := make([]InventoryItemResponse, 0, len(page.Items))
	for i := range page.Items {
		entry := page.Items[i]
		items = append(items, InventoryItemResponse{
			PrizeID:   entry.PrizeID,
			Quantity:  entry.Quantity,
			ExpiresAt: entry.ExpiresAt,
			Prize:     FromPrizeView(entry.Prize),
		})
	}
	return &InventoryListResponse{
		Items: items,
		Meta:  FromPageMeta(page.Meta),
	}
}

type ConsumeItemResponse struct {
	PrizeID       uuid.UUID      `json:"prize_id"`
	QuantityUsed  int32          `json:"quantity_used"`
	Prize         *PrizeResponse `json:"prize"`
	AwardedPoints *int64         `json:"awarded_points,omitempty"`
}

func FromConsumeResult(result *commands.ConsumeResult) *ConsumeItemResponse {
	return &ConsumeItemResponse{
		PrizeID:       result.PrizeID,
		QuantityUsed:  result.QuantityUsed,
		Prize:         FromPrizeView(result.Prize),
		AwardedPoints: result.AwardedPoints,
	}
}
