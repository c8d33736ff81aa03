package main

import (
	"storefront-service/internal/handler"
	mid "storefront-service/internal/middleware"
	"storefront-service/internal/model"
	"storefront-service/internal/storage"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if present; production environments set real
	// environment variables instead.
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load("storefront-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.User{},
		&model.UserRole{},
		&model.InventoryAlert{},
		&model.AnalyticsEvent{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize upload storage
	uploadStore, err := storage.NewLocalStore(appConfig.Storage.UploadDir, appConfig.Storage.PublicBaseURL)
	if err != nil {
		log.Fatal("Failed to initialize upload storage", zap.Error(err))
	}
	handler.Init(appConfig, uploadStore)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics and health endpoints
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.HealthCheck)

	// Uploaded images
	e.Static(appConfig.Storage.PublicBaseURL, appConfig.Storage.UploadDir)

	// Auth routes
	e.POST("/api/auth/register", handler.Register)
	e.POST("/api/auth/login", handler.Login)
	e.GET("/api/auth/session", handler.Session, mid.AuthMiddleware)

	// Catalog routes (public)
	e.GET("/api/catalog", handler.ListCatalog)
	e.GET("/api/catalog/:id", handler.GetCatalogProduct)

	// Cart routes - authenticated users or guest sessions
	cartAPI := e.Group("/api/cart", mid.SessionMiddleware)
	cartAPI.GET("", handler.GetCart)
	cartAPI.POST("", handler.AddCartLine)
	cartAPI.PUT("/:index", handler.UpdateCartLine)
	cartAPI.DELETE("/:index", handler.RemoveCartLine)
	cartAPI.DELETE("", handler.ClearCart)

	// Checkout - guests reach the handler and are rejected there
	e.POST("/api/checkout", handler.Checkout, mid.SessionMiddleware)

	// Admin routes - role re-checked on every request
	adminAPI := e.Group("/api/admin", mid.AuthMiddleware, mid.AdminMiddleware)
	adminAPI.POST("/products", handler.UpsertProduct)
	adminAPI.DELETE("/products/:id", handler.DeleteProduct)
	adminAPI.PUT("/products/:id/stock", handler.UpdateStock)
	adminAPI.GET("/orders", handler.ListOrders)
	adminAPI.PUT("/orders/:id/status", handler.UpdateOrderStatus)
	adminAPI.POST("/uploads", handler.UploadImage)
	adminAPI.GET("/analytics/summary", handler.AnalyticsSummary)
	adminAPI.GET("/analytics/daily", handler.DailyRevenue)
	adminAPI.GET("/analytics/alerts", handler.ListInventoryAlerts)
	adminAPI.PUT("/analytics/alerts/:id/notify", handler.NotifyInventoryAlert)
	adminAPI.GET("/export/orders", handler.ExportOrders)
	adminAPI.GET("/export/products", handler.ExportProducts)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
