package main

import (
	"context"
	"fmt"

	"financial-agent/config"
	"financial-agent/internal/advisor"
	advisorUC "financial-agent/internal/advisor/usecase"
	"financial-agent/internal/bootstrap"
	"financial-agent/pkg/log"
)

// advisorClient is the slice of the advisor use case the CLI drives.
type advisorClient interface {
	Chat(ctx context.Context, input advisor.ChatInput) (advisor.Answer, error)
	ClearHistory(ctx context.Context, sessionID string) error
	FinancialData(ctx context.Context, input advisor.FinancialDataInput) (advisor.FinancialDataOutput, error)
}

type app struct {
	advisor advisorClient
	close   func() error
}

func (a *app) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

func wireApp(ctx context.Context, opts wireOptions) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        opts.LogLevel,
		Mode:         log.ModeDevelopment,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	agent, err := bootstrap.NewAgent(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("wire agent: %w", err)
	}

	// The CLI has no watchlist store; watchlist chat is API only.
	uc := advisorUC.New(logger, agent.Orchestrator, agent.Sessions, agent.Market, nil)
	return &app{advisor: uc, close: agent.Close}, nil
}
