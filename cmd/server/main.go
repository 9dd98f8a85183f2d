package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"access-log-service/internal/config"
	"access-log-service/internal/handler"
	"access-log-service/internal/repository"
	"access-log-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	logger.Init(cfg.Log.Level)
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}
	logger.Info().Str("backend", cfg.Storage.Backend).Msg("Configuration loaded successfully")

	// 2. Open the storage backend
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// 3. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := handler.NewRouter(cfg, store)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}

	// 4. Serve until interrupted
	go func() {
		logger.Infof("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
