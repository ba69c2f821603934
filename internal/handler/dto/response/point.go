package response

import (
	"time"

	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PointBalanceResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Balance int64     `json:"balance"`
}

func FromPointBalanceView(view *queries.PointBalanceView) *PointBalanceResponse {
	return &PointBalanceResponse{
		UserID:  view.UserID,
		Balance: view.Balance,
	}
}

type PointHistoryEntryResponse struct {
	ID            uuid.UUID `json:"id"`
	Amount        int64     `json:"amount"`
	BalanceBefore int64     `json:"balance_before"`
	BalanceAfter  int64     `json:"balance_after"`
	Description   string    `json:"description"`
	Cause         string    `json:"cause"`
	CreatedAt     time.Time `json:"created_at"`
}

type PointHistoryListResponse struct {
	Items []PointHistoryEntryResponse `json:"items"`
	Meta  PageMetaResponse            `json:"meta"`
}

func FromPointHistoryPage(page *queries.PointHistoryPage) *PointHistoryListResponse {
	items := make([]PointHistoryEntryResponse, 0, len(page.Items))
	for i := range page.Items {
		var entry PointHistoryEntryResponse
		_ = copier.Copy(&entry, &page.Items[i])
		items = append(items, entry)
	}
	return &PointHistoryListResponse{
		Items: items,
		Meta:  FromPageMeta(page.Meta),
	}
}
