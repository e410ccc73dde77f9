package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"financial-agent/internal/agent"
	"financial-agent/internal/marketdata"
	pkgLog "financial-agent/pkg/log"
)

// Config tunes the dispatcher.
type Config struct {
	FetchTimeout   time.Duration
	MaxConcurrency int
}

// Dispatcher fans requests out to a marketdata.Provider and joins the results.
type Dispatcher struct {
	provider marketdata.Provider
	l        pkgLog.Logger
	timeout  time.Duration
	limit    int
	tracer   trace.Tracer
}

var _ agent.Dispatcher = (*Dispatcher)(nil)

// New creates a Dispatcher over provider. Zero config values fall back to
// DefaultFetchTimeout and DefaultMaxConcurrency.
func New(provider marketdata.Provider, l pkgLog.Logger, cfg Config) *Dispatcher {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	return &Dispatcher{
		provider: provider,
		l:        l,
		timeout:  cfg.FetchTimeout,
		limit:    cfg.MaxConcurrency,
		tracer:   otel.Tracer(tracerName),
	}
}

// Dispatch deduplicates reqs, runs them concurrently and waits for all of
// them. Every request yields exactly one outcome; failures never abort
// sibling fetches.
func (d *Dispatcher) Dispatch(ctx context.Context, reqs []agent.DataRequest) agent.Dataset {
	reqs = agent.Dedupe(reqs)
	batchSize.Observe(float64(len(reqs)))
	if len(reqs) == 0 {
		return agent.Dataset{}
	}

	ctx, span := d.tracer.Start(ctx, "dispatcher.Dispatch",
		trace.WithAttributes(attribute.Int("requests", len(reqs))))
	defer span.End()

	outcomes := make([]agent.FetchOutcome, len(reqs))
	var g errgroup.Group
	g.SetLimit(d.limit)
	for i, req := range reqs {
		g.Go(func() error {
			outcomes[i] = d.fetch(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	ds := make(agent.Dataset, len(reqs))
	for i, req := range reqs {
		ds[req.Kind] = outcomes[i]
	}

	if failed := ds.Failures(); len(failed) > 0 {
		d.l.Warnf(ctx, "%s: %d/%d fetches failed: %v", LogPrefixDispatch, len(failed), len(reqs), failed)
	}
	return ds
}

type result struct {
	doc agent.Document
	err error
}

// fetch runs one request under its own timeout. The provider call runs in a
// separate goroutine so that a provider ignoring ctx cannot stall the join.
func (d *Dispatcher) fetch(ctx context.Context, req agent.DataRequest) agent.FetchOutcome {
	kind := string(req.Kind)
	ctx, span := d.tracer.Start(ctx, "dispatcher.fetch",
		trace.WithAttributes(attribute.String("tool_kind", kind)))
	defer span.End()

	fctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%s: %v", ReasonPanic, r)}
			}
		}()
		doc, err := d.call(fctx, req)
		done <- result{doc: doc, err: err}
	}()

	var outcome agent.FetchOutcome
	select {
	case r := <-done:
		switch {
		case r.err != nil:
			outcome = agent.Failure(r.err.Error())
		case len(r.doc) == 0:
			outcome = agent.Failure(ReasonEmptyResult)
		default:
			outcome = agent.Success(r.doc)
		}
	case <-fctx.Done():
		if errors.Is(fctx.Err(), context.DeadlineExceeded) {
			outcome = agent.Failure(ReasonTimeout)
		} else {
			outcome = agent.Failure(ReasonCanceled)
		}
	}

	label := "ok"
	if !outcome.OK() {
		label = "failed"
		if outcome.Reason == ReasonTimeout {
			label = ReasonTimeout
		}
		span.SetStatus(codes.Error, outcome.Reason)
		d.l.Debugf(ctx, "%s: %s %s failed: %s", LogPrefixFetch, kind, describe(req), outcome.Reason)
	}
	recordFetch(kind, label, time.Since(start).Seconds())
	return outcome
}

// call maps a request onto the provider method for its kind.
func (d *Dispatcher) call(ctx context.Context, req agent.DataRequest) (agent.Document, error) {
	switch req.Kind {
	case agent.ToolCompare:
		if len(req.Tickers) == 0 {
			return nil, errors.New(ReasonBadRequest)
		}
		return d.provider.Compare(ctx, req.Tickers, splitList(req.Param(agent.ParamMetrics, "")))
	case agent.ToolHistorical:
		return d.provider.HistoricalPrices(ctx, req.Ticker,
			req.Param(agent.ParamPeriod, agent.DefaultPeriod), req.Param(agent.ParamInterval, agent.DefaultInterval))
	case agent.ToolStatements:
		quarterly, _ := strconv.ParseBool(req.Param(agent.ParamQuarterly, "false"))
		return d.provider.FinancialStatements(ctx, req.Ticker,
			req.Param(agent.ParamStatementType, agent.StatementIncome), quarterly)
	case agent.ToolNews:
		limit, err := strconv.Atoi(req.Param(agent.ParamLimit, ""))
		if err != nil || limit <= 0 {
			limit = agent.DefaultNewsLimit
		}
		return d.provider.News(ctx, req.Ticker, limit)
	case agent.ToolUpcomingEvents:
		return d.provider.UpcomingEvents(ctx, req.Ticker)
	case agent.ToolRecommendations:
		return d.provider.Recommendations(ctx, req.Ticker)
	case agent.ToolStockInfo:
		return d.provider.StockInfo(ctx, req.Ticker)
	default:
		return nil, errors.New(ReasonUnsupported)
	}
}

func describe(req agent.DataRequest) string {
	if req.Ticker != "" {
		return req.Ticker
	}
	return strings.Join(req.Tickers, ",")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
