// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cornexhq/cornex-connect/internal/ai"
	"github.com/cornexhq/cornex-connect/internal/api"
	"github.com/cornexhq/cornex-connect/internal/cache"
	"github.com/cornexhq/cornex-connect/internal/config"
	"github.com/cornexhq/cornex-connect/internal/currency"
	"github.com/cornexhq/cornex-connect/internal/repository"
	"github.com/cornexhq/cornex-connect/internal/repository/postgres"
	"github.com/cornexhq/cornex-connect/internal/service"
	"github.com/cornexhq/cornex-connect/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Initialize cache
	recCache, err := cache.NewRecommendationCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Recommendation cache unavailable, continuing without it")
		recCache = cache.NewNoopRecommendationCache()
	}

	// Display timezone for the schedule calendar
	loc, err := time.LoadLocation(cfg.App.DisplayTimezone)
	if err != nil {
		logger.Log.Warn().Str("timezone", cfg.App.DisplayTimezone).Msg("unknown display timezone, using UTC")
		loc = time.UTC
	}

	// Insight provider: Gemini when a key is configured, static otherwise
	var insightProvider ai.InsightService
	if cfg.AI.APIKey != "" {
		insightProvider = ai.NewGeminiService(cfg.AI.APIKey, cfg.AI.Model)
	} else {
		logger.Log.Info().Msg("No AI key configured, using static insight provider")
		insightProvider = ai.NewStaticInsightService()
	}

	// Initialize repositories and services
	auditRepo := repository.NewAuditRepository(db.DB)
	inventoryService := service.NewInventoryService(repository.NewInventoryRepository(db.DB), recCache)
	catalogService := service.NewCatalogService(repository.NewProductRepository(db.DB))
	scheduleService := service.NewScheduleService(repository.NewScheduleRepository(db), loc)
	networkService := service.NewNetworkService(
		repository.NewDistributorRepository(db.DB),
		repository.NewAchievementRepository(db.DB),
		auditRepo,
	)
	insightService := service.NewInsightService(insightProvider, inventoryService, catalogService)

	router := api.NewRouter(&api.Services{
		Inventory:      inventoryService,
		Catalog:        catalogService,
		Schedule:       scheduleService,
		Insight:        insightService,
		Network:        networkService,
		Currency:       currency.NewConverter(),
		DefaultCountry: cfg.App.DefaultCountry,
	}, cfg.Server.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
