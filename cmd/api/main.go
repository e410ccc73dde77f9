package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"financial-agent/config"
	_ "financial-agent/docs" // Swagger docs
	"financial-agent/internal/bootstrap"
	"financial-agent/internal/httpserver"
	"financial-agent/internal/watchlist/repository/sqlite"
	"financial-agent/pkg/log"
	"financial-agent/pkg/tracing"
)

// @title       Financial Research Agent API
// @description Natural language financial research over live market data, with conversation memory and a personal watchlist.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Financial Research Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracing
	shutdownTracing, err := tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize tracing: ", err)
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warnf(ctx, "Tracing shutdown: %v", err)
		}
	}()

	// 4. Query pipeline
	agent, err := bootstrap.NewAgent(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize agent: ", err)
		return
	}
	defer agent.Close()

	// 5. Watchlist storage
	db, err := sqlite.Open(cfg.Watchlist.DatabasePath)
	if err != nil {
		logger.Error(ctx, "Failed to open watchlist database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Watchlist database: %s", cfg.Watchlist.DatabasePath)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ServiceName:     cfg.Tracing.ServiceName,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TracingEnabled:  cfg.Tracing.Enabled,
		WatchlistDB:     db,
		MarketData:      agent.Market,
		Resolver:        agent.Orchestrator,
		Sessions:        agent.Sessions,
		Generation:      agent.Generation,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
