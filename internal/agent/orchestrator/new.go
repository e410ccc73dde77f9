package orchestrator

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"financial-agent/internal/agent"
	pkgLog "financial-agent/pkg/log"
)

// Orchestrator resolves a query into data fetches, aggregates the results
// with recent history and asks the generation backend for an answer.
type Orchestrator struct {
	l          pkgLog.Logger
	gen        agent.GenerationClient
	extractor  agent.TickerExtractor
	classifier agent.DataNeedClassifier
	dispatcher agent.Dispatcher
	sessions   agent.SessionStore

	recentWindow int
	summaryMax   int
	now          func() time.Time
	tracer       trace.Tracer
}

// New wires an Orchestrator. gen may be nil, in which case every Resolve
// fails fast with ErrGenerationUnavailable.
func New(
	l pkgLog.Logger,
	gen agent.GenerationClient,
	extractor agent.TickerExtractor,
	classifier agent.DataNeedClassifier,
	dispatcher agent.Dispatcher,
	sessions agent.SessionStore,
	opt Options,
) *Orchestrator {
	if opt.RecentWindow <= 0 {
		opt.RecentWindow = DefaultRecentWindow
	}
	if opt.SummaryMaxChars <= 0 {
		opt.SummaryMaxChars = DefaultSummaryMaxChars
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &Orchestrator{
		l:            l,
		gen:          gen,
		extractor:    extractor,
		classifier:   classifier,
		dispatcher:   dispatcher,
		sessions:     sessions,
		recentWindow: opt.RecentWindow,
		summaryMax:   opt.SummaryMaxChars,
		now:          opt.Now,
		tracer:       otel.Tracer(tracerName),
	}
}
