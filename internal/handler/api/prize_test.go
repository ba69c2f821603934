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

type fakePrizeCommands struct {
	view      *queries.PrizeView
	createErr error
	updateErr error
	deleteErr error
}

func (f *fakePrizeCommands) CreatePrize(_ context.Context, _ commands.CreatePrizeParams) (*queries.PrizeView, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.view, nil
}

func (f *fakePrizeCommands) UpdatePrize(_ context.Context, _ uuid.UUID, _ commands.UpdatePrizeParams) (*queries.PrizeView, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.view, nil
}

func (f *fakePrizeCommands) DeletePrize(_ context.Context, _ uuid.UUID) error {
	return f.deleteErr
}

type fakePrizeQueries struct {
	view *queries.PrizeView
	page *queries.PrizePage
	err  error
}

func (f *fakePrizeQueries) GetPrize(_ context.Context, _ uuid.UUID) (*queries.PrizeView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakePrizeQueries) ListPrizes(_ context.Context, _, _ int32) (*queries.PrizePage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

type PrizeHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakePrizeCommands
	queries  *fakePrizeQueries
}

func (s *PrizeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.commands = &fakePrizeCommands{}
	s.queries = &fakePrizeQueries{}

	handler := api.NewPrizeHandler(s.commands, s.queries)
	s.router.POST("/admin/prizes", handler.CreatePrize)
	s.router.GET("/admin/prizes", handler.ListPrizes)
	s.router.GET("/admin/prizes/:prizeId", handler.GetPrize)
	s.router.PATCH("/admin/prizes/:prizeId", handler.UpdatePrize)
	s.router.DELETE("/admin/prizes/:prizeId", handler.DeletePrize)
}

func TestPrizeHandlerSuite(t *testing.T) {
	suite.Run(t, new(PrizeHandlerTestSuite))
}

func (s *PrizeHandlerTestSuite) perform(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *PrizeHandlerTestSuite) TestCreatePrize() {
	body := map[string]any{
		"title":          "Gift Card",
		"kind":           "CASH",
		"value":          500,
		"stock_quantity": 10,
		"weight":         1.5,
	}

	s.Run("created prize is echoed back", func() {
		s.commands.view = &queries.PrizeView{ID: uuid.New(), Title: "Gift Card", Kind: "CASH", Value: 500, Active: true}

		rec := s.perform(http.MethodPost, "/admin/prizes", body)
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.PrizeResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("Gift Card", resp.Title)
		s.True(resp.Active)
	})

	s.Run("missing title fails binding", func() {
		rec := s.perform(http.MethodPost, "/admin/prizes", map[string]any{"kind": "CASH"})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown kind fails binding", func() {
		invalid := map[string]any{"title": "X", "kind": "MYSTERY"}
		rec := s.perform(http.MethodPost, "/admin/prizes", invalid)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("duplicate title maps to 409", func() {
		s.commands.createErr = commands.ErrTitleTaken
		rec := s.perform(http.MethodPost, "/admin/prizes", body)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("domain validation maps to 400", func() {
		s.commands.createErr = commands.ErrDomainValidation
		rec := s.perform(http.MethodPost, "/admin/prizes", body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PrizeHandlerTestSuite) TestGetPrize() {
	s.Run("found", func() {
		id := uuid.New()
		s.queries.view = &queries.PrizeView{ID: id, Title: "Gift Card", Kind: "CASH"}

		rec := s.perform(http.MethodGet, "/admin/prizes/"+id.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown id maps to 404", func() {
		s.queries.err = queries.ErrPrizeNotFound
		rec := s.perform(http.MethodGet, "/admin/prizes/"+uuid.NewString(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("malformed id maps to 400", func() {
		rec := s.perform(http.MethodGet, "/admin/prizes/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *PrizeHandlerTestSuite) TestUpdatePrize() {
	id := uuid.New()

	s.Run("patch succeeds", func() {
		s.commands.view = &queries.PrizeView{ID: id, Title: "Renamed", Kind: "CASH"}

		rec := s.perform(http.MethodPatch, "/admin/prizes/"+id.String(), map[string]any{"title": "Renamed"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unknown prize maps to 404", func() {
		s.commands.updateErr = commands.ErrPrizeNotFound
		rec := s.perform(http.MethodPatch, "/admin/prizes/"+id.String(), map[string]any{"title": "Renamed"})
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *PrizeHandlerTestSuite) TestDeletePrize() {
	s.Run("deletes", func() {
		rec := s.perform(http.MethodDelete, "/admin/prizes/"+uuid.NewString(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown prize maps to 404", func() {
		s.commands.deleteErr = commands.ErrPrizeNotFound
		rec := s.perform(http.MethodDelete, "/admin/prizes/"+uuid.NewString(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
