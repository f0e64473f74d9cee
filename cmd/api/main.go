package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/adapter/http/router"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/classifier"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/config"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Load the sentiment model once, serve many
	model, err := classifier.New(&cfg.Classifier, log)
	if err != nil {
		log.Error("Failed to load classifier", zap.Error(err))
		return fmt.Errorf("failed to load classifier: %w", err)
	}
	log.Info("Classifier ready", zap.String("backend", cfg.Classifier.Backend))

	// Setup router
	r := router.Setup(model, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting sentiment API server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Release model resources
	if err := model.Close(); err != nil {
		log.Warn("Failed to close classifier", zap.Error(err))
	}

	log.Info("Server exited")
	return nil
}
