package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financial-agent/internal/agent"
	"financial-agent/internal/agent/intent"
	"financial-agent/internal/agent/orchestrator"
	"financial-agent/internal/agent/session"
	pkgLog "financial-agent/pkg/log"
)

type recordingDispatcher struct {
	mu     sync.Mutex
	calls  int
	reqs   []agent.DataRequest
	result func(reqs []agent.DataRequest) agent.Dataset
	hook   func()
}

func (d *recordingDispatcher) Dispatch(_ context.Context, reqs []agent.DataRequest) agent.Dataset {
	d.mu.Lock()
	d.calls++
	d.reqs = append([]agent.DataRequest(nil), reqs...)
	d.mu.Unlock()
	if d.hook != nil {
		d.hook()
	}
	if d.result != nil {
		return d.result(reqs)
	}
	ds := agent.Dataset{}
	for _, r := range reqs {
		ds[r.Kind] = agent.Success(agent.Document{"ticker": r.Ticker})
	}
	return ds
}

type fakeGenerator struct {
	text        string
	err         error
	unavailable bool

	calls        int
	systemPrompt string
	context      string
}

func (g *fakeGenerator) Generate(_ context.Context, systemPrompt, userContext string) (string, error) {
	g.calls++
	g.systemPrompt = systemPrompt
	g.context = userContext
	return g.text, g.err
}

func (g *fakeGenerator) Available() bool { return !g.unavailable }

var fixedNow = time.Date(2025, 5, 14, 9, 30, 0, 0, time.UTC)

type fixture struct {
	orch  *orchestrator.Orchestrator
	disp  *recordingDispatcher
	gen   *fakeGenerator
	store *session.Store
}

func newFixture(gen agent.GenerationClient) fixture {
	lex := intent.DefaultLexicon()
	disp := &recordingDispatcher{}
	store := session.New(session.Config{Capacity: 10})
	o := orchestrator.New(
		pkgLog.NewNop(),
		gen,
		intent.NewExtractor(lex),
		intent.NewClassifier(lex),
		disp,
		store,
		orchestrator.Options{Now: func() time.Time { return fixedNow }},
	)
	f := fixture{orch: o, disp: disp, store: store}
	if g, ok := gen.(*fakeGenerator); ok {
		f.gen = g
	}
	return f
}

func TestResolve_TeslaNews(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "Tesla headlines..."})

	out, err := f.orch.Resolve(context.Background(), orchestrator.Input{
		Query:     "What's the latest news on Tesla?",
		SessionID: "s1",
	})
	require.NoError(t, err)

	require.Len(t, f.disp.reqs, 1)
	assert.Equal(t, agent.ToolNews, f.disp.reqs[0].Kind)
	assert.Equal(t, "TSLA", f.disp.reqs[0].Ticker)
	assert.Equal(t, "10", f.disp.reqs[0].Param(agent.ParamLimit, ""))

	assert.Equal(t, "Tesla headlines...", out.ResponseText)
	assert.Equal(t, "s1", out.SessionID)
	assert.Equal(t, fixedNow, out.Timestamp)
	assert.Empty(t, out.Error)
	assert.Len(t, out.Dataset, 1)

	h := f.orch.History("s1")
	require.Len(t, h, 1)
	assert.Equal(t, "What's the latest news on Tesla?", h[0].UserQuery)
	assert.Equal(t, "Tesla headlines...", h[0].ResponseSummary)
}

func TestResolve_FocusedTickerOverridesEveryRequest(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "ok"})

	_, err := f.orch.Resolve(context.Background(), orchestrator.Input{
		Query:       "Compare AAPL vs MSFT",
		SessionID:   "s1",
		UserContext: agent.UserContext{"focused_ticker": "tsla"},
	})
	require.NoError(t, err)

	require.Len(t, f.disp.reqs, 1)
	assert.Equal(t, agent.ToolCompare, f.disp.reqs[0].Kind)
	assert.Equal(t, []string{"TSLA"}, f.disp.reqs[0].Tickers)
}

func TestResolve_FocusOverrideAppliesToAllKinds(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "ok"})

	_, err := f.orch.Resolve(context.Background(), orchestrator.Input{
		Query:       "AAPL news and analyst ratings",
		UserContext: agent.UserContext{"focusedTicker": "NVDA"},
	})
	require.NoError(t, err)

	require.Len(t, f.disp.reqs, 2)
	for _, r := range f.disp.reqs {
		assert.Equal(t, "NVDA", r.Ticker, r.Kind)
	}
}

func TestResolve_NoGeneratorFailsFast(t *testing.T) {
	f := newFixture(nil)

	out, err := f.orch.Resolve(context.Background(), orchestrator.Input{Query: "AAPL news", SessionID: "s1"})
	require.ErrorIs(t, err, orchestrator.ErrGenerationUnavailable)
	assert.True(t, orchestrator.IsUnavailable(err))

	assert.Zero(t, f.disp.calls, "no fetch may be attempted")
	assert.Empty(t, out.Dataset)
	assert.NotEmpty(t, out.Error)
	assert.Equal(t, orchestrator.MsgGenerationUnavailable, out.ResponseText)
	assert.Empty(t, f.orch.History("s1"))
}

func TestResolve_UnavailableBackendFailsFast(t *testing.T) {
	f := newFixture(&fakeGenerator{unavailable: true})

	_, err := f.orch.Resolve(context.Background(), orchestrator.Input{Query: "AAPL news"})
	require.ErrorIs(t, err, orchestrator.ErrGenerationUnavailable)
	assert.Zero(t, f.disp.calls)
	assert.Zero(t, f.gen.calls)
}

func TestResolve_GenerationErrorEchoesQuery(t *testing.T) {
	f := newFixture(&fakeGenerator{err: errors.New("upstream 529")})

	out, err := f.orch.Resolve(context.Background(), orchestrator.Input{Query: "AAPL overview", SessionID: "s1"})
	require.Error(t, err)

	var gerr *orchestrator.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, "AAPL overview", gerr.Query)
	assert.True(t, orchestrator.IsGenerationError(err))

	assert.Contains(t, out.ResponseText, "AAPL overview")
	assert.NotEmpty(t, out.Error)
	assert.NotEmpty(t, out.Dataset, "dataset is still returned")
	assert.Empty(t, f.orch.History("s1"), "failed turns are not recorded")
}

func TestResolve_ContextCarriesLastThreeExchanges(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "ok"})
	for _, q := range []string{"alpha", "bravo", "charlie", "delta", "echo"} {
		f.store.Append("s1", agent.Exchange{UserQuery: q, ResponseSummary: q + "-answer"})
	}

	_, err := f.orch.Resolve(context.Background(), orchestrator.Input{Query: "AAPL news", SessionID: "s1"})
	require.NoError(t, err)

	ctxText := f.gen.context
	assert.True(t, strings.HasPrefix(ctxText, orchestrator.SectionQuery+"AAPL news"))
	assert.Contains(t, ctxText, orchestrator.SectionConversation)
	for _, q := range []string{"charlie", "delta", "echo"} {
		assert.Contains(t, ctxText, q)
	}
	for _, q := range []string{"alpha", "bravo"} {
		assert.NotContains(t, ctxText, q)
	}
}

func TestResolve_ContextMarksFailures(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "ok"})
	f.disp.result = func(reqs []agent.DataRequest) agent.Dataset {
		return agent.Dataset{
			agent.ToolNews:      agent.Failure("timeout"),
			agent.ToolStockInfo: agent.Success(agent.Document{"price": 10.0}),
		}
	}

	_, err := f.orch.Resolve(context.Background(), orchestrator.Input{
		Query:       "AAPL news overview",
		UserContext: agent.UserContext{"platform": "watchlist_chat"},
	})
	require.NoError(t, err)

	assert.Contains(t, f.gen.context, `"status": "unavailable"`)
	assert.Contains(t, f.gen.context, `"error": "timeout"`)
	assert.Contains(t, f.gen.context, orchestrator.SectionUserContext)
	assert.Contains(t, f.gen.context, "watchlist_chat")
}

func TestResolve_NoTickersStillGenerates(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "general answer"})

	out, err := f.orch.Resolve(context.Background(), orchestrator.Input{Query: "how are markets doing today?"})
	require.NoError(t, err)
	assert.Empty(t, f.disp.reqs)
	assert.Empty(t, out.Dataset)
	assert.Contains(t, f.gen.context, orchestrator.NoDataNotice)
	assert.Equal(t, orchestrator.DefaultSessionID, out.SessionID)
}

func TestResolve_SummaryIsTruncated(t *testing.T) {
	long := strings.Repeat("x", 600)
	f := newFixture(&fakeGenerator{text: long})

	out, err := f.orch.Resolve(context.Background(), orchestrator.Input{Query: "AAPL", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, long, out.ResponseText, "caller receives the full text")

	h := f.orch.History("s1")
	require.Len(t, h, 1)
	assert.Equal(t, strings.Repeat("x", 500)+"...", h[0].ResponseSummary)
}

func TestResolve_AbandonedRequestIsNotRecorded(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "ok"})
	ctx, cancel := context.WithCancel(context.Background())
	f.disp.hook = cancel

	_, err := f.orch.Resolve(ctx, orchestrator.Input{Query: "AAPL news", SessionID: "s1"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, f.gen.calls)
	assert.Empty(t, f.orch.History("s1"))
}

func TestResolve_SystemPromptCarriesDateAndQuarter(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "ok"})

	_, err := f.orch.Resolve(context.Background(), orchestrator.Input{Query: "AAPL"})
	require.NoError(t, err)
	assert.Contains(t, f.gen.systemPrompt, "2025-05-14")
	assert.Contains(t, f.gen.systemPrompt, "Q2 2025")
}

func TestClear(t *testing.T) {
	f := newFixture(&fakeGenerator{text: "ok"})
	_, err := f.orch.Resolve(context.Background(), orchestrator.Input{Query: "AAPL", SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, f.orch.History("s1"), 1)

	f.orch.Clear("s1")
	assert.Empty(t, f.orch.History("s1"))
}
