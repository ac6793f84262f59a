// Package server assembles the HTTP router.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"depotlens/internal/config"
	"depotlens/internal/handlers"
	"depotlens/internal/middleware"

	_ "depotlens/internal/docs" // Import swagger docs
)

// Login attempts per client: a burst of five, then one every twelve seconds.
const (
	loginEvery = 12 * time.Second
	loginBurst = 5
)

// Market data requests per client: a burst of twenty, then five per second.
const (
	marketEvery = 200 * time.Millisecond
	marketBurst = 20
)

// NewRouter builds the gin engine with every route of the API.
func NewRouter(cfg *config.Config, svc *Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Auth, svc.Audit, cfg.JWTSecret, cfg.JWTExpirationDur)
	portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio, svc.Audit)
	snapshotHandler := handlers.NewSnapshotHandler(svc.Snapshots)
	uploadHandler := handlers.NewUploadHandler(svc.Documents, svc.Audit)
	marketHandler := handlers.NewMarketHandler(svc.Market, svc.Audit)
	chartHandler := handlers.NewChartHandler(svc.Charts)

	router := gin.New()
	router.MaxMultipartMemory = cfg.MaxUploadMB << 20
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequestTimeout(cfg.RequestTimeout))

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/login", middleware.RateLimit(loginEvery, loginBurst), authHandler.Login)
	auth.GET("/status", authHandler.Status)

	// Pipeline routes
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(cfg.PipelineAPIKey))
	pipeline.POST("/prices/refresh", marketHandler.RefreshPrices)
	pipeline.POST("/snapshots", snapshotHandler.RecordSnapshot)

	// Owner routes
	protected := v1.Group("")
	protected.Use(middleware.OwnerAuth(cfg.JWTSecret, svc.Auth.Enabled()))

	portfolio := protected.Group("/portfolio")
	portfolio.GET("", portfolioHandler.ListEntries)
	portfolio.POST("", portfolioHandler.CreateEntry)
	portfolio.DELETE("", portfolioHandler.ClearEntries)
	portfolio.GET("/stats", portfolioHandler.GetStats)
	portfolio.GET("/snapshots", snapshotHandler.GetSnapshots)
	portfolio.POST("/upload", uploadHandler.Upload)
	portfolio.GET("/:id", portfolioHandler.GetEntry)
	portfolio.DELETE("/:id", portfolioHandler.DeleteEntry)

	market := protected.Group("/market")
	market.Use(middleware.RateLimit(marketEvery, marketBurst))
	market.GET("/quote/:symbol", marketHandler.GetQuote)
	market.GET("/search", marketHandler.Search)
	market.GET("/profile/:symbol", marketHandler.GetProfile)
	market.GET("/historical/:symbol", marketHandler.GetHistorical)
	market.GET("/etfs", marketHandler.PopularETFs)
	market.GET("/prices/:symbol", marketHandler.GetPriceRecords)
	market.POST("/portfolio/update", marketHandler.UpdatePrices)
	market.POST("/compare", marketHandler.Compare)

	charts := protected.Group("/charts")
	charts.GET("/portfolio/allocation", chartHandler.Allocation)
	charts.GET("/portfolio/performance", chartHandler.Performance)
	charts.GET("/portfolio/vs-etf/:symbol", chartHandler.VersusETF)
	charts.GET("/portfolio/profit-loss", chartHandler.ProfitLoss)
	charts.GET("/market/trending", chartHandler.Trending)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
