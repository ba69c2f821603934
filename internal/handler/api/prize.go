package api

import (
	"errors"
	"net/http"

	"prize-wheel/internal/handler/httperr"

	reqdto "prize-wheel/internal/handler/dto/request"
	resdto "prize-wheel/internal/handler/dto/response"
	"prize-wheel/internal/usecase/commands"
	"prize-wheel/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PrizeHandler struct {
	prizeCommands commands.PrizeCommands
	prizeQueries  queries.PrizeQueries
}

func NewPrizeHandler(
	prizeCommands commands.PrizeCommands,
	prizeQueries queries.PrizeQueries,
) *PrizeHandler {
	return &PrizeHandler{
		prizeCommands: prizeCommands,
		prizeQueries:  prizeQueries,
	}
}

// @Summary Create prize
// @Description Register a new prize in the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePrizeRequest true "Prize"
// @Success 201 {object} resdto.PrizeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/prizes [post]
func (h *PrizeHandler) CreatePrize(c *gin.Context) {
	var req reqdto.CreatePrizeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params := commands.CreatePrizeParams{
		Title:         req.Title,
		Kind:          req.Kind,
		Value:         req.Value,
		StockQuantity: req.StockQuantity,
		Weight:        req.Weight,
		ExpiresAt:     req.ExpiresAt,
		Active:        req.IsActive(),
	}

	view, err := h.prizeCommands.CreatePrize(c.Request.Context(), params)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPrizeView(view))
}

// @Summary List prizes
// @Description List all prizes in the catalog, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} resdto.PrizeListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/prizes [get]
func (h *PrizeHandler) ListPrizes(c *gin.Context) {
	var query reqdto.PageQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid pagination parameters", nil)
		return
	}

	page, err := h.prizeQueries.ListPrizes(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list prizes", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPrizePage(page))
}

// @Summary Get prize
// @Description Get one prize by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param prizeId path string true "Prize ID"
// @Success 200 {object} resdto.PrizeResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/prizes/{prizeId} [get]
func (h *PrizeHandler) GetPrize(c *gin.Context) {
	prizeID, err := uuid.Parse(c.Param("prizeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid prize ID", nil)
		return
	}

	view, err := h.prizeQueries.GetPrize(c.Request.Context(), prizeID)
	if err != nil {
		if errors.Is(err, queries.ErrPrizeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Prize not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load prize", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPrizeView(view))
}

// @Summary Update prize
// @Description Patch prize fields; omitted fields keep their current values
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param prizeId path string true "Prize ID"
// @Param request body reqdto.UpdatePrizeRequest true "Fields to update"
// @Success 200 {object} resdto.PrizeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/prizes/{prizeId} [patch]
func (h *PrizeHandler) UpdatePrize(c *gin.Context) {
	prizeID, err := uuid.Parse(c.Param("prizeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid prize ID", nil)
		return
	}

	var req reqdto.UpdatePrizeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params := commands.UpdatePrizeParams{
		Title:         req.Title,
		Kind:          req.Kind,
		Value:         req.Value,
		StockQuantity: req.StockQuantity,
		Weight:        req.Weight,
		ExpiresAt:     req.ExpiresAt,
		Active:        req.Active,
	}

	view, err := h.prizeCommands.UpdatePrize(c.Request.Context(), prizeID, params)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPrizeView(view))
}

// @Summary Delete prize
// @Description Remove a prize from the catalog; held inventory entries keep working
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param prizeId path string true "Prize ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/prizes/{prizeId} [delete]
func (h *PrizeHandler) DeletePrize(c *gin.Context) {
	prizeID, err := uuid.Parse(c.Param("prizeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid prize ID", nil)
		return
	}

	if err := h.prizeCommands.DeletePrize(c.Request.Context(), prizeID); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PrizeHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid prize definition", nil)
	case errors.Is(err, commands.ErrPrizeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Prize not found", nil)
	case errors.Is(err, commands.ErrTitleTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Prize title already in use", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
