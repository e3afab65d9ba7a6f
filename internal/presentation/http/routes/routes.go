package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/config"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/presentation/http/handler"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Receipt     *handler.ReceiptHandler
	CashSession *handler.CashSessionHandler
	Product     *handler.ProductHandler
	Print       *handler.PrintHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Logo and fonts for the frontend
	router.Static("/assets", cfg.App.AssetsDir)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerReceiptRoutes(v1, h)
		registerCashSessionRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.POST("/:id/print", h.Print.PrintReceipt)
	}
}

func registerCashSessionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sessions := v1.Group("/cash-sessions")
	{
		sessions.GET("", h.CashSession.List)
		sessions.POST("", h.CashSession.Open)
		sessions.GET("/open", h.CashSession.GetOpen)
		sessions.GET("/:id", h.CashSession.Get)
		sessions.POST("/:id/close", h.CashSession.Close)
		sessions.GET("/:id/receipts", h.CashSession.ListReceipts)
		sessions.GET("/:id/summary", h.CashSession.Summary)
		sessions.POST("/:id/print-report", h.Print.PrintSessionReport)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Print.GetStatus)
		printerGroup.POST("/test", h.Print.TestPrint)
	}
}
