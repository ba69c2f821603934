package api

import (
	"errors"
	"net/http"

	reqdto "prize-wheel/internal/handler/dto/request"
	resdto "prize-wheel/internal/handler/dto/response"
	"prize-wheel/internal/handler/middleware"
	"prize-wheel/internal/usecase/commands"
	"prize-wheel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(
	inventoryCommands commands.InventoryCommands,
	inventoryQueries queries.InventoryQueries,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary List inventory
// @Description List the authenticated user's prize inventory
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} resdto.InventoryListResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /inventory [get]
func (h *InventoryHandler) ListInventory(c *gin.Context) {
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

	page, err := h.inventoryQueries.ListUserInventory(c.Request.Context(), userID, query.Page, query.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInventoryPage(page))
}

// @Summary Use inventory item
// @Description Consume a quantity of a held prize; POINT prizes credit the point balance
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param prizeId path string true "Prize ID"
// @Param request body reqdto.ConsumeItemRequest false "Consume request"
// @Success 200 {object} resdto.ConsumeItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /inventory/{prizeId}/use [post]
func (h *InventoryHandler) UseItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	prizeID, err := uuid.Parse(c.Param("prizeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid prize ID",
		})
		return
	}

	req := reqdto.ConsumeItemRequest{}
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.inventoryCommands.ConsumeItem(c.Request.Context(), userID, prizeID, req.GetQuantity())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
		case errors.Is(err, commands.ErrPrizeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Prize not found",
			})
		case errors.Is(err, commands.ErrInsufficientQuantity):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Insufficient quantity",
			})
		case errors.Is(err, commands.ErrCouponExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coupon has expired",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConsumeResult(result))
}
