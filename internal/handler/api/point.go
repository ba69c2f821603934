package api

import (
	"net/http"

	reqdto "prize-wheel/internal/handler/dto/request"
	resdto "prize-wheel/internal/handler/dto/response"
	"prize-wheel/internal/handler/middleware"
	"prize-wheel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PointHandler struct {
	pointQueries queries.PointQueries
}

func NewPointHandler(pointQueries queries.PointQueries) *PointHandler {
	return &PointHandler{
		pointQueries: pointQueries,
	}
}

// @Summary Get point balance
// @Description Get the authenticated user's current point balance
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PointBalanceResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /points [get]
func (h *PointHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	balance, err := h.pointQueries.GetBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPointBalanceView(balance))
}

// @Summary List point history
// @Description List the authenticated user's point ledger entries, newest first
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} resdto.PointHistoryListResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /points/history [get]
func (h *PointHandler) ListHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var query reqdto.PageQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pagination parameters",
		})
		return
	}

	page, err := h.pointQueries.ListHistory(c.Request.Context(), userID, query.Page, query.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPointHistoryPage(page))
}
