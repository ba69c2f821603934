package api

import (
	"errors"
	"net/http"

	resdto "prize-wheel/internal/handler/dto/response"
	"prize-wheel/internal/handler/middleware"
	"prize-wheel/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WheelHandler struct {
	wheelCommands commands.WheelCommands
}

func NewWheelHandler(wheelCommands commands.WheelCommands) *WheelHandler {
	return &WheelHandler{
		wheelCommands: wheelCommands,
	}
}

// @Summary Spin the wheel
// @Description Run one weighted draw over the active prize catalog and credit any win
// @Tags wheel
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SpinResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /wheel/spin [post]
func (h *WheelHandler) Spin(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.wheelCommands.Spin(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidUserID):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpinResult(result))
}
