// Package bootstrap assembles the query pipeline shared by the API server
// and the command line client.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"financial-agent/config"
	"financial-agent/internal/agent/dispatcher"
	"financial-agent/internal/agent/intent"
	"financial-agent/internal/agent/orchestrator"
	"financial-agent/internal/agent/session"
	"financial-agent/internal/marketdata"
	"financial-agent/internal/marketdata/cache"
	mdYahoo "financial-agent/internal/marketdata/yahoo"
	"financial-agent/pkg/llmprovider"
	"financial-agent/pkg/log"
	"financial-agent/pkg/yahoo"
)

const redisPingTimeout = 2 * time.Second

// Agent bundles the wired pipeline components.
type Agent struct {
	Market       marketdata.Provider
	Generation   *llmprovider.Manager
	Sessions     *session.Store
	Orchestrator *orchestrator.Orchestrator

	closers []func() error
}

// NewAgent wires lexicon, market data, cache, dispatcher, generation and
// session memory from cfg.
func NewAgent(ctx context.Context, cfg *config.Config, l log.Logger) (*Agent, error) {
	lex, err := loadLexicon(cfg.Intent.LexiconPath)
	if err != nil {
		return nil, err
	}

	client, err := yahoo.New(yahoo.Config{
		BaseURL:    cfg.MarketData.BaseURL,
		UserAgent:  cfg.MarketData.UserAgent,
		RatePerSec: cfg.MarketData.RateLimitPerSec,
		HTTPClient: &http.Client{Timeout: cfg.MarketData.RequestTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap.NewAgent: yahoo client: %w", err)
	}

	a := &Agent{}
	a.Market = mdYahoo.New(client, l)
	if cfg.Cache.Enabled {
		a.Market = cache.Wrap(a.Market, a.cacheStore(ctx, cfg.Cache, l))
	}

	disp := dispatcher.New(a.Market, l, dispatcher.Config{
		FetchTimeout:   cfg.MarketData.FetchTimeout,
		MaxConcurrency: cfg.MarketData.MaxConcurrency,
	})

	a.Generation = llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
	if !a.Generation.Available() {
		l.Warn(ctx, "No generation backend configured: queries will be rejected")
	}

	a.Sessions = session.New(session.Config{
		Capacity: cfg.Session.Capacity,
		IdleTTL:  cfg.Session.IdleTTL,
	})
	a.closers = append(a.closers, func() error {
		a.Sessions.Close()
		return nil
	})

	a.Orchestrator = orchestrator.New(
		l,
		a.Generation,
		intent.NewExtractor(lex),
		intent.NewClassifier(lex),
		disp,
		a.Sessions,
		orchestrator.Options{
			RecentWindow:    cfg.Session.RecentWindow,
			SummaryMaxChars: cfg.Session.SummaryMaxChars,
		},
	)
	return a, nil
}

// Close releases background workers and connections.
func (a *Agent) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func loadLexicon(path string) (intent.Lexicon, error) {
	if path == "" {
		return intent.DefaultLexicon(), nil
	}
	lex, err := intent.LoadLexicon(path)
	if err != nil {
		return intent.Lexicon{}, fmt.Errorf("bootstrap.loadLexicon: %w", err)
	}
	return lex, nil
}

// cacheStore returns an in-process LRU, tiered over Redis when an address is
// configured. An unreachable Redis is logged and still used: its reads miss.
func (a *Agent) cacheStore(ctx context.Context, cfg config.CacheConfig, l log.Logger) cache.Store {
	local := cache.NewMemoryStore(cfg.Size, cfg.TTL)
	if cfg.RedisAddr == "" {
		return local
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	a.closers = append(a.closers, rdb.Close)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		l.Warnf(ctx, "Redis cache at %s unreachable: %v", cfg.RedisAddr, err)
	} else {
		l.Infof(ctx, "Redis cache connected at %s", cfg.RedisAddr)
	}
	return cache.NewTieredStore(local, cache.NewRedisStore(rdb, cfg.TTL))
}
