//go:build unit

package api_test

import (
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

type fakeWheelCommands struct {
	result *commands.SpinResult
	err    error
	calls  []uuid.UUID
}

func (f *fakeWheelCommands) Spin(_ context.Context, userID uuid.UUID) (*commands.SpinResult, error) {
	f.calls = append(f.calls, userID)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type WheelHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *fakeWheelCommands
	userID   uuid.UUID
}

func (s *WheelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.commands = &fakeWheelCommands{}
	s.userID = uuid.New()

	handler := api.NewWheelHandler(s.commands)
	s.router.POST("/wheel/spin", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		handler.Spin(c)
	})
	s.router.POST("/wheel/spin-anon", handler.Spin)
}

func TestWheelHandlerSuite(t *testing.T) {
	suite.Run(t, new(WheelHandlerTestSuite))
}

func (s *WheelHandlerTestSuite) perform(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *WheelHandlerTestSuite) TestSpin() {
	s.Run("win includes the prize payload", func() {
		prizeID := uuid.New()
		s.commands.result = &commands.SpinResult{
			Won:     true,
			Message: "You won: Gift Card",
			Prize:   &queries.PrizeView{ID: prizeID, Title: "Gift Card", Kind: "CASH"},
		}

		rec := s.perform("/wheel/spin")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.SpinResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("WIN", resp.Result)
		s.Require().NotNil(resp.Prize)
		s.Equal(prizeID, resp.Prize.ID)
		s.Equal([]uuid.UUID{s.userID}, s.commands.calls)
	})

	s.Run("lose omits the prize payload", func() {
		s.commands.result = &commands.SpinResult{
			Won:     false,
			Message: "Better luck next time",
		}

		rec := s.perform("/wheel/spin")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.SpinResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("LOSE", resp.Result)
		s.Nil(resp.Prize)
	})

	s.Run("missing auth context is an internal error", func() {
		rec := s.perform("/wheel/spin-anon")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})

	s.Run("command failure maps to 500", func() {
		s.commands.err = commands.ErrDatabaseOperationFailed

		rec := s.perform("/wheel/spin")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
