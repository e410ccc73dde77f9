package usecase

import (
	"context"
	"time"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
	"financial-agent/internal/agent/orchestrator"
	"financial-agent/internal/agent/session"
	"financial-agent/internal/marketdata"
	"financial-agent/pkg/log"
)

// Resolver answers queries and owns session history.
type Resolver interface {
	Resolve(ctx context.Context, in orchestrator.Input) (orchestrator.Output, error)
	History(sessionID string) []agent.Exchange
	Clear(sessionID string)
}

// SessionLister enumerates live sessions.
type SessionLister interface {
	List(match func(id string) bool) []session.Info
}

// WatchlistSource yields a user's tracked symbols.
type WatchlistSource interface {
	Symbols(ctx context.Context, userID int64) ([]string, error)
}

// implUseCase is the private implementation of advisor.UseCase.
type implUseCase struct {
	l         log.Logger
	resolver  Resolver
	sessions  SessionLister
	market    marketdata.Provider
	watchlist WatchlistSource
	now       func() time.Time
}

var _ advisor.UseCase = (*implUseCase)(nil)

// New creates a new advisor UseCase implementation.
func New(l log.Logger, resolver Resolver, sessions SessionLister, market marketdata.Provider, watchlist WatchlistSource) *implUseCase {
	return &implUseCase{
		l:         l,
		resolver:  resolver,
		sessions:  sessions,
		market:    market,
		watchlist: watchlist,
		now:       time.Now,
	}
}
