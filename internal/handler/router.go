package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"prize-wheel/internal/handler/api"
	"prize-wheel/internal/handler/middleware"
	"prize-wheel/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	wheelHandler *api.WheelHandler,
	inventoryHandler *api.InventoryHandler,
	pointHandler *api.PointHandler,
	prizeHandler *api.PrizeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, wheelHandler, inventoryHandler, pointHandler, prizeHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	wheelHandler *api.WheelHandler,
	inventoryHandler *api.InventoryHandler,
	pointHandler *api.PointHandler,
	prizeHandler *api.PrizeHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		wheel := apiGroup.Group("/wheel")
		wheel.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wheel, []route{
				{Method: http.MethodPost, Path: "/spin", Handler: wheelHandler.Spin},
			})
		}

		inventory := apiGroup.Group("/inventory")
		inventory.Use(authMiddleware.RequireAuth())
		{
			addRoutes(inventory, []route{
				{Method: http.MethodGet, Path: "", Handler: inventoryHandler.ListInventory},
				{Method: http.MethodPost, Path: "/:prizeId/use", Handler: inventoryHandler.UseItem},
			})
		}

		points := apiGroup.Group("/points")
		points.Use(authMiddleware.RequireAuth())
		{
			addRoutes(points, []route{
				{Method: http.MethodGet, Path: "", Handler: pointHandler.GetBalance},
				{Method: http.MethodGet, Path: "/history", Handler: pointHandler.ListHistory},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth())
		admin.Use(authMiddleware.RequireAdmin())
		{
			prizes := admin.Group("/prizes")
			addRoutes(prizes, []route{
				{Method: http.MethodPost, Path: "", Handler: prizeHandler.CreatePrize},
				{Method: http.MethodGet, Path: "", Handler: prizeHandler.ListPrizes},
				{Method: http.MethodGet, Path: "/:prizeId", Handler: prizeHandler.GetPrize},
				{Method: http.MethodPatch, Path: "/:prizeId", Handler: prizeHandler.UpdatePrize},
				{Method: http.MethodDelete, Path: "/:prizeId", Handler: prizeHandler.DeletePrize},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
