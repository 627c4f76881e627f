package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"swiftaid/internal/config"
	"swiftaid/internal/handlers"
	"swiftaid/internal/middleware"
	"swiftaid/internal/repositories/memory"
	"swiftaid/internal/services"
	"swiftaid/pkg/logger"
	"swiftaid/pkg/websocket"
	"swiftaid/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Colors: config.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// In-memory store with the fixed sample data set
	store := memory.NewStore()
	if err := memory.Seed(context.Background(), store); err != nil {
		appLogger.Fatalf("Failed to seed store: %v", err)
	}

	userRepo := memory.NewUserRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	ambulanceRepo := memory.NewAmbulanceRepository(store)
	hospitalRepo := memory.NewHospitalRepository(store)
	emergencyRepo := memory.NewEmergencyRepository(store)
	activityRepo := memory.NewActivityRepository(store)

	dispatchService := services.NewDispatchService(
		userRepo,
		locationRepo,
		ambulanceRepo,
		hospitalRepo,
		emergencyRepo,
		activityRepo,
		appLogger,
	)

	// Initialize handlers
	dispatchHandler := handlers.NewDispatchHandler(dispatchService, appLogger)
	wsHandler := websocket.NewHandler(ambulanceRepo, appLogger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.IdentityMiddleware(cfg.App.DefaultUserID))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, appLogger))

	// API routes
	api := router.Group("/api")
	{
		routes.SetupDispatchRoutes(api, dispatchHandler)
	}

	// Realtime channel
	router.GET(cfg.WebSocket.Path, wsHandler.HandleWebSocket)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("addr", addr).Info("Starting server")
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}
