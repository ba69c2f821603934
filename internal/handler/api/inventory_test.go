//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"prize-wheel/internal/handler/api"
	resdto "prize-wheel/internal/handler/dto/response"
	"prize-wheel/internal/usecase/commands"
	"prize-wheel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type fakeInventoryCommands struct {
	result   *commands.ConsumeResult
	err      error
	consumed []int32
}

func (f *fakeInventoryCommands) ConsumeItem(_ context.Context, _, _ uuid.UUID, quantity int32) (*commands.ConsumeResult, error) {
	f.consumed = append(f.consumed, quantity)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeInventoryQueries struct {
	page *queries.InventoryPage
	err  error
}

func (f *fakeInventoryQueries) ListUserInventory(_ context.Context, _ uuid.UUID, page, limit int32) (*queries.InventoryPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

type InventoryHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeInventoryCommands
	queries  *fakeInventoryQueries
	userID   uuid.UUID
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.commands = &fakeInventoryCommands{}
	s.queries = &fakeInventoryQueries{}
	s.userID = uuid.New()

	handler := api.NewInventoryHandler(s.commands, s.queries)
	withUser := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.userID)
			h(c)
		}
	}
	s.router.GET("/inventory", withUser(handler.ListInventory))
	s.router.POST("/inventory/:prizeId/use", withUser(handler.UseItem))
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) performUse(prizeID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, "/inventory/"+prizeID+"/use", &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *InventoryHandlerTestSuite) TestListInventory() {
	entryPrize := &queries.PrizeView{ID: uuid.New(), Title: "Gift Card", Kind: "CASH"}
	s.queries.page = &queries.InventoryPage{
		Items: []queries.InventoryEntryView{
			{PrizeID: entryPrize.ID, Quantity: 2, Prize: entryPrize},
			{PrizeID: uuid.New(), Quantity: 1}, // catalog entry deleted
		},
		Meta: queries.NewPageMeta(1, 20, 2),
	}

	req := httptest.NewRequest(http.MethodGet, "/inventory?page=1&limit=20", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)

	var resp resdto.InventoryListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Items, 2)
	s.Require().NotNil(resp.Items[0].Prize)
	s.Equal("Gift Card", resp.Items[0].Prize.Title)
	s.Nil(resp.Items[1].Prize)
	s.Equal(int64(2), resp.Meta.TotalCount)
}

func (s *InventoryHandlerTestSuite) TestUseItem() {
	prizeID := uuid.New()

	s.Run("success with explicit quantity", func() {
		points := int64(20)
		s.commands.err = nil
		s.commands.result = &commands.ConsumeResult{
			PrizeID:       prizeID,
			QuantityUsed:  2,
			Prize:         &queries.PrizeView{ID: prizeID, Title: "Bonus Points", Kind: "POINT"},
			AwardedPoints: &points,
		}

		rec := s.performUse(prizeID.String(), map[string]any{"quantity": 2})
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ConsumeItemResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(int32(2), resp.QuantityUsed)
		s.Require().NotNil(resp.AwardedPoints)
		s.Equal(int64(20), *resp.AwardedPoints)
		s.Equal([]int32{2}, s.commands.consumed)
	})

	s.Run("omitted body defaults quantity to 1", func() {
		s.commands.err = nil
		s.commands.consumed = nil
		s.commands.result = &commands.ConsumeResult{PrizeID: prizeID, QuantityUsed: 1}

		rec := s.performUse(prizeID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal([]int32{1}, s.commands.consumed)
	})

	s.Run("invalid prize id", func() {
		rec := s.performUse("not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error mapping", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown prize", err: commands.ErrPrizeNotFound, expectCode: http.StatusNotFound},
			{name: "insufficient quantity", err: commands.ErrInsufficientQuantity, expectCode: http.StatusConflict},
			{name: "expired coupon", err: commands.ErrCouponExpired, expectCode: http.StatusBadRequest},
			{name: "invalid quantity", err: commands.ErrInvalidQuantity, expectCode: http.StatusBadRequest},
			{name: "storage failure", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.commands.err = tc.err
				rec := s.performUse(prizeID.String(), nil)
				s.Equal(tc.expectCode, rec.Code)
			})
		}
	})
}
