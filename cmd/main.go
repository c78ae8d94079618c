package main

import (
	"warehouse-service/internal/handler"
	mid "warehouse-service/internal/middleware"
	"warehouse-service/pkg/config"
	"warehouse-service/pkg/database"
	"warehouse-service/pkg/jwtutil"
	"warehouse-service/pkg/logger"
	"warehouse-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env if present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting warehouse-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Hash the shared operator credential
	if err := handler.InitAuth(&appConfig.Auth); err != nil {
		log.Fatal("Failed to initialize auth", zap.Error(err))
	}

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	err = database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Login issues the session token all /api routes require
	e.POST("/api/auth/login", handler.Login)

	api := e.Group("/api", mid.AuthMiddleware)

	// Product catalog
	api.GET("/products", handler.ListProducts)
	api.POST("/products", handler.CreateProduct)
	api.PUT("/products/:id", handler.UpdateProduct)
	api.DELETE("/products/:id", handler.DeleteProduct)
	api.GET("/products/lookup", handler.LookupProduct)

	// Incoming ledger
	api.POST("/incoming", handler.CreateIncoming)
	api.GET("/incoming", handler.ListOpenIncoming)
	api.GET("/incoming/history", handler.ListIncomingHistory)

	// Inspection ledger
	api.GET("/qc/queue", handler.InspectionQueue)
	api.POST("/qc/release", handler.ReleaseToInspection)
	api.POST("/qc/outcome", handler.RecordInspectionOutcome)
	api.GET("/qc/pending", handler.PendingInspections)
	api.GET("/qc/history", handler.InspectionHistory)

	// Deflashing ledger
	api.POST("/deflashing", handler.CreateDeflashing)
	api.GET("/deflashing", handler.DeflashingHistory)

	// Outgoing ledger
	api.POST("/outgoing", handler.CreateOutgoing)
	api.GET("/outgoing", handler.OutgoingHistory)

	// Stock dashboard
	api.GET("/dashboard", handler.Dashboard)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
