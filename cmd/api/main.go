// backend-go/cmd/api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/andresuchdata/inventory-analytics/backend-go/internal/api"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/cache"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/config"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/engine"
	"github.com/andresuchdata/inventory-analytics/backend-go/internal/service"
	"github.com/andresuchdata/inventory-analytics/backend-go/pkg/logger"
)

func main() {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	analyticsEngine := engine.New(engine.Options{
		DefaultTimeRange:    cfg.Engine.DefaultTimeRange,
		ForecastHistoryDays: cfg.Engine.ForecastHistoryDays,
		ForecastHorizonDays: cfg.Engine.ForecastHorizonDays,
		TopProducts:         cfg.Engine.TopProducts,
	})

	analyticsCache, err := cache.NewAnalyticsCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("cache unavailable, continuing without it")
		analyticsCache = cache.NewNoopAnalyticsCache()
	}

	analyticsService := service.NewAnalyticsService(analyticsEngine, analyticsCache)

	router := api.NewRouter(analyticsService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

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
