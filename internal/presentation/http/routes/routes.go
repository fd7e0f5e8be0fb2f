package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/narmadatraders/billing-api/internal/config"
	"github.com/narmadatraders/billing-api/internal/presentation/http/handler"
	"github.com/narmadatraders/billing-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session *handler.SessionHandler
	Item    *handler.ItemHandler
	Catalog *handler.CatalogHandler
	Bill    *handler.BillHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-session rate limiter
		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   middleware.DefaultRateLimiterConfig().CleanupInterval,
			EntryTTL:          middleware.DefaultRateLimiterConfig().EntryTTL,
		})
		v1.Use(rateLimiter.Middleware())

		registerCatalogRoutes(v1, h)
		registerSessionRoutes(v1, h)
	}

	return router
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	catalog := v1.Group("/catalog")
	{
		catalog.GET("", h.Catalog.List)
		catalog.GET("/suggest", h.Catalog.Suggest)
	}
}

func registerSessionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sessions := v1.Group("/sessions")
	{
		sessions.POST("", h.Session.Create)
		sessions.GET("/:id", h.Session.Get)
		sessions.DELETE("/:id", h.Session.Delete)
		sessions.PUT("/:id/header", h.Session.UpdateHeader)
		sessions.POST("/:id/total", h.Session.RecalculateTotal)
		sessions.GET("/:id/focus", h.Session.ClaimFocus)

		sessions.POST("/:id/items", h.Item.Insert)
		sessions.PATCH("/:id/items/:itemID", h.Item.Update)
		sessions.DELETE("/:id/items/:itemID", h.Item.Remove)
		sessions.POST("/:id/items/:itemID/commit", h.Item.Commit)

		sessions.POST("/:id/bill", h.Bill.Compile)
		sessions.GET("/:id/bill/preview", h.Bill.Preview)
		sessions.GET("/:id/bill/export", h.Bill.Export)
		sessions.POST("/:id/bill/print", h.Bill.Print)
	}
}
