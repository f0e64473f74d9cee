package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/tezansahu/sentiment-analyzer-mcp/internal/adapter/client"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/gateway"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/config"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/infrastructure/logger"
	"github.com/tezansahu/sentiment-analyzer-mcp/internal/usecase"
)

const version = "1.0.0"

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

	// Stdout belongs to the MCP transport; log to stderr
	cfg.Log.Output = "stderr"
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	predictClient := client.NewPredictClient(cfg.API.BaseURL, cfg.API.Timeout)
	uc := usecase.NewSentimentUsecase(predictClient, cfg.API.ItemTimeout, cfg.API.ProbeTimeout, log)
	gw := gateway.New(uc, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("Starting sentiment MCP server",
		zap.String("version", version),
		zap.String("api_base_url", cfg.API.BaseURL))

	server := gw.Server(version)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server stopped: %w", err)
	}

	log.Info("MCP server exited")
	return nil
}
