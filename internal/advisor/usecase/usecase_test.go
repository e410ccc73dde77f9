package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
	"financial-agent/internal/agent/orchestrator"
	"financial-agent/internal/agent/session"
	"financial-agent/internal/marketdata"
	"financial-agent/pkg/log"
)

var fixedNow = time.Date(2025, 5, 14, 9, 30, 0, 0, time.UTC)

// fakeResolver records the last input and writes successful turns to store.
type fakeResolver struct {
	store *session.Store
	last  orchestrator.Input
	err   error
	ds    agent.Dataset
}

func (r *fakeResolver) Resolve(_ context.Context, in orchestrator.Input) (orchestrator.Output, error) {
	r.last = in
	out := orchestrator.Output{Dataset: r.ds, SessionID: in.SessionID, Timestamp: fixedNow}
	if r.err != nil {
		out.Error = r.err.Error()
		out.ResponseText = "sorry"
		return out, r.err
	}
	out.ResponseText = "answer to " + in.Query
	r.store.Append(in.SessionID, agent.NewExchange(fixedNow, in.Query, out.ResponseText, 500))
	return out, nil
}

func (r *fakeResolver) History(id string) []agent.Exchange { return r.store.History(id) }
func (r *fakeResolver) Clear(id string)                    { r.store.Clear(id) }

type fakeWatchlist struct {
	symbols map[int64][]string
	err     error
}

func (w *fakeWatchlist) Symbols(_ context.Context, userID int64) ([]string, error) {
	return w.symbols[userID], w.err
}

type fakeMarket struct {
	marketdata.Provider
	called string
	args   []any
	err    error
}

func (m *fakeMarket) record(name string, args ...any) (marketdata.Document, error) {
	m.called = name
	m.args = args
	if m.err != nil {
		return nil, m.err
	}
	return marketdata.Document{"source": name}, nil
}

func (m *fakeMarket) StockInfo(_ context.Context, t string) (marketdata.Document, error) {
	return m.record("StockInfo", t)
}
func (m *fakeMarket) HistoricalPrices(_ context.Context, t, p, i string) (marketdata.Document, error) {
	return m.record("HistoricalPrices", t, p, i)
}
func (m *fakeMarket) FinancialStatements(_ context.Context, t, s string, q bool) (marketdata.Document, error) {
	return m.record("FinancialStatements", t, s, q)
}
func (m *fakeMarket) News(_ context.Context, t string, n int) (marketdata.Document, error) {
	return m.record("News", t, n)
}
func (m *fakeMarket) UpcomingEvents(_ context.Context, t string) (marketdata.Document, error) {
	return m.record("UpcomingEvents", t)
}
func (m *fakeMarket) Recommendations(_ context.Context, t string) (marketdata.Document, error) {
	return m.record("Recommendations", t)
}

type fixture struct {
	uc     *implUseCase
	res    *fakeResolver
	store  *session.Store
	market *fakeMarket
	wl     *fakeWatchlist
}

func newFixture() fixture {
	store := session.New(session.Config{Capacity: 10})
	res := &fakeResolver{store: store}
	market := &fakeMarket{}
	wl := &fakeWatchlist{symbols: map[int64][]string{}}
	uc := New(log.NewNop(), res, store, market, wl)
	uc.now = func() time.Time { return fixedNow }
	return fixture{uc: uc, res: res, store: store, market: market, wl: wl}
}

func TestChat(t *testing.T) {
	f := newFixture()

	ans, err := f.uc.Chat(context.Background(), advisor.ChatInput{Query: "  AAPL news  "})
	require.NoError(t, err)
	assert.Equal(t, advisor.DefaultSessionID, f.res.last.SessionID)
	assert.Equal(t, "AAPL news", f.res.last.Query)
	assert.Equal(t, "answer to AAPL news", ans.Response)
	assert.Empty(t, ans.Error)
}

func TestChat_EmptyQuery(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Chat(context.Background(), advisor.ChatInput{Query: "   "})
	assert.ErrorIs(t, err, advisor.ErrEmptyQuery)
}

func TestChat_GenerationFailureIsInAnswer(t *testing.T) {
	f := newFixture()
	f.res.err = &orchestrator.GenerationError{Query: "q", Err: errors.New("boom")}

	ans, err := f.uc.Chat(context.Background(), advisor.ChatInput{Query: "q", SessionID: "s"})
	require.NoError(t, err)
	assert.NotEmpty(t, ans.Error)
	assert.Equal(t, "sorry", ans.Response)
}

func TestChat_Unavailable(t *testing.T) {
	f := newFixture()
	f.res.err = orchestrator.ErrGenerationUnavailable

	_, err := f.uc.Chat(context.Background(), advisor.ChatInput{Query: "q"})
	assert.ErrorIs(t, err, advisor.ErrGenerationUnavailable)
}

func TestAnalyzeStock(t *testing.T) {
	f := newFixture()
	f.res.ds = agent.Dataset{
		agent.ToolNews:      agent.Success(nil),
		agent.ToolStockInfo: agent.Success(nil),
	}

	out, err := f.uc.AnalyzeStock(context.Background(), advisor.AnalyzeStockInput{Ticker: "nvda"})
	require.NoError(t, err)

	assert.Equal(t, "summary_NVDA", f.res.last.SessionID)
	assert.Contains(t, f.res.last.Query, "comprehensive analysis of NVDA stock")
	assert.Equal(t, []string{"NVDA"}, out.Tickers)
	assert.Equal(t, []agent.ToolKind{agent.ToolNews, agent.ToolStockInfo}, out.DataSources)
	assert.Equal(t, fixedNow, out.Timestamp)
}

func TestAnalyzeStock_Errors(t *testing.T) {
	f := newFixture()
	_, err := f.uc.AnalyzeStock(context.Background(), advisor.AnalyzeStockInput{Ticker: "!!"})
	assert.ErrorIs(t, err, advisor.ErrInvalidTicker)

	f.res.err = &orchestrator.GenerationError{Query: "q", Err: errors.New("boom")}
	_, err = f.uc.AnalyzeStock(context.Background(), advisor.AnalyzeStockInput{Ticker: "AAPL"})
	assert.ErrorIs(t, err, advisor.ErrGenerationFailed)
}

func TestCompare(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Compare(context.Background(), advisor.CompareInput{Tickers: []string{"aapl", "msft", "AAPL"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, out.Tickers)
	assert.Equal(t, "comparison_AAPL-MSFT", f.res.last.SessionID)
	assert.True(t, strings.HasPrefix(f.res.last.Query, "Compare and analyze AAPL, MSFT stocks."))
}

func TestCompare_Bounds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Compare(ctx, advisor.CompareInput{Tickers: []string{"AAPL"}})
	assert.ErrorIs(t, err, advisor.ErrTooFewTickers)

	_, err = f.uc.Compare(ctx, advisor.CompareInput{Tickers: []string{"AAPL", "aapl"}})
	assert.ErrorIs(t, err, advisor.ErrTooFewTickers, "duplicates do not count twice")

	_, err = f.uc.Compare(ctx, advisor.CompareInput{Tickers: []string{"A", "B", "C", "D", "E", "F"}})
	assert.ErrorIs(t, err, advisor.ErrTooManyTickers)
}

func TestAnalyzePortfolio(t *testing.T) {
	f := newFixture()

	out, err := f.uc.AnalyzePortfolio(context.Background(), advisor.PortfolioInput{
		Tickers: []string{"aapl", "ko"},
		Goals:   "retirement income",
	})
	require.NoError(t, err)
	assert.Equal(t, advisor.PortfolioSessionID, f.res.last.SessionID)
	assert.Equal(t, advisor.RiskModerate, out.RiskTolerance)
	assert.Equal(t, "retirement income", out.Goals)
	assert.Equal(t, []string{"AAPL", "KO"}, out.Tickers)
	assert.Contains(t, f.res.last.Query, "containing AAPL, KO.")
	assert.True(t, strings.HasSuffix(f.res.last.Query, "User goals: retirement income Risk tolerance: moderate"))
}

func TestAnalyzePortfolio_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.AnalyzePortfolio(ctx, advisor.PortfolioInput{})
	assert.ErrorIs(t, err, advisor.ErrEmptyPortfolio)

	_, err = f.uc.AnalyzePortfolio(ctx, advisor.PortfolioInput{Tickers: []string{"AAPL"}, RiskTolerance: "yolo"})
	assert.ErrorIs(t, err, advisor.ErrInvalidRiskTolerance)
}

func TestFinancialData(t *testing.T) {
	tests := []struct {
		dataType string
		period   string
		called   string
		args     []any
	}{
		{"", "", "StockInfo", []any{"AAPL"}},
		{"comprehensive", "", "StockInfo", []any{"AAPL"}},
		{"historical", "", "HistoricalPrices", []any{"AAPL", "1y", "1d"}},
		{"historical", "5d", "HistoricalPrices", []any{"AAPL", "5d", "1d"}},
		{"statements", "", "FinancialStatements", []any{"AAPL", "income_stmt", false}},
		{"news", "", "News", []any{"AAPL", 10}},
		{"events", "", "UpcomingEvents", []any{"AAPL"}},
		{"RECOMMENDATIONS", "", "Recommendations", []any{"AAPL"}},
	}
	for _, tc := range tests {
		t.Run(tc.dataType+tc.period, func(t *testing.T) {
			f := newFixture()
			out, err := f.uc.FinancialData(context.Background(), advisor.FinancialDataInput{
				Ticker: "aapl", DataType: tc.dataType, Period: tc.period,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.called, f.market.called)
			assert.Equal(t, tc.args, f.market.args)
			assert.Equal(t, "AAPL", out.Ticker)
			assert.Equal(t, tc.called, out.Data["source"])
		})
	}
}

func TestFinancialData_Errors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.FinancialData(ctx, advisor.FinancialDataInput{Ticker: "AAPL", DataType: "gossip"})
	assert.ErrorIs(t, err, advisor.ErrInvalidDataType)

	f.market.err = marketdata.ErrNoData
	_, err = f.uc.FinancialData(ctx, advisor.FinancialDataInput{Ticker: "ZZZZ"})
	assert.ErrorIs(t, err, advisor.ErrDataNotFound)
}

func TestHistoryAndClear(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	_, err := f.uc.Chat(ctx, advisor.ChatInput{Query: "hello", SessionID: "s1"})
	require.NoError(t, err)

	h, err := f.uc.History(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, h.History, 1)

	require.NoError(t, f.uc.ClearHistory(ctx, "s1"))
	h, _ = f.uc.History(ctx, "s1")
	assert.Empty(t, h.History)
}

func TestWatchlistChat_General(t *testing.T) {
	f := newFixture()
	f.wl.symbols[1] = []string{"AAPL", "MSFT"}

	_, err := f.uc.WatchlistChat(context.Background(), advisor.WatchlistChatInput{Query: "how are my stocks?"})
	require.NoError(t, err)

	in := f.res.last
	assert.Equal(t, "watchlist_general_1", in.SessionID)
	assert.Equal(t, "how are my stocks?\n\nAvailable stocks for analysis: AAPL, MSFT", in.Query)
	assert.Equal(t, []string{"AAPL", "MSFT"}, in.UserContext[agent.ContextWatchlist])
	assert.Equal(t, advisor.WatchlistPlatform, in.UserContext[agent.ContextPlatform])
	assert.Empty(t, in.UserContext.FocusedTicker())
}

func TestWatchlistChat_FocusedTicker(t *testing.T) {
	f := newFixture()
	f.wl.symbols[7] = []string{"AAPL"}

	_, err := f.uc.WatchlistChat(context.Background(), advisor.WatchlistChatInput{Query: "outlook?", Ticker: "aapl", UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "watchlist_AAPL_7", f.res.last.SessionID)
	assert.Equal(t, "Focus on AAPL: outlook?", f.res.last.Query)
	assert.Equal(t, "AAPL", f.res.last.UserContext.FocusedTicker())

	_, err = f.uc.WatchlistChat(context.Background(), advisor.WatchlistChatInput{Query: "outlook?", Ticker: "TSLA", UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "Focus on TSLA: outlook?\n\nNote: TSLA is not in the user's watchlist but analysis is available.", f.res.last.Query)
}

func TestWatchlistChat_DemoListWhenEmpty(t *testing.T) {
	f := newFixture()
	f.wl.err = errors.New("db down")

	_, err := f.uc.WatchlistChat(context.Background(), advisor.WatchlistChatInput{Query: "hi"})
	require.NoError(t, err)
	assert.Equal(t, advisor.DemoWatchlist, f.res.last.UserContext[agent.ContextWatchlist])
}

func TestWatchlistSessions(t *testing.T) {
	f := newFixture()
	f.wl.symbols[1] = []string{"AAPL"}

	long := strings.Repeat("q", 150)
	f.store.Append("watchlist_general_1", agent.Exchange{Timestamp: fixedNow.Add(-2 * time.Hour), UserQuery: "general"})
	f.store.Append("watchlist_AAPL_1", agent.Exchange{Timestamp: fixedNow.Add(-time.Hour), UserQuery: long})
	f.store.Append("watchlist_TSLA_1", agent.Exchange{Timestamp: fixedNow, UserQuery: "tsla?"})
	f.store.Append("watchlist_AAPL_10", agent.Exchange{Timestamp: fixedNow, UserQuery: "other user"})
	f.store.Append("summary_AAPL", agent.Exchange{Timestamp: fixedNow, UserQuery: "not watchlist"})

	out, err := f.uc.WatchlistSessions(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, out.Symbols)
	require.Len(t, out.Sessions, 3)

	assert.Equal(t, "watchlist_TSLA_1", out.Sessions[0].SessionID)
	assert.Equal(t, "TSLA", out.Sessions[0].Ticker)
	assert.Equal(t, advisor.WatchlistTitleGeneral, out.Sessions[0].Title, "TSLA is not on the list")

	assert.Equal(t, "AAPL Analysis", out.Sessions[1].Title)
	assert.Equal(t, strings.Repeat("q", 100)+"...", out.Sessions[1].LastMessage)
	assert.Equal(t, 1, out.Sessions[1].MessageCount)

	assert.Empty(t, out.Sessions[2].Ticker)
	assert.Equal(t, advisor.WatchlistTitleGeneral, out.Sessions[2].Title)
}

func TestDeleteSession(t *testing.T) {
	f := newFixture()
	f.store.Append("watchlist_general_1", agent.Exchange{UserQuery: "x"})

	require.NoError(t, f.uc.DeleteSession(context.Background(), "watchlist_general_1"))
	assert.Empty(t, f.store.History("watchlist_general_1"))
}

func TestParseWatchlistSession(t *testing.T) {
	tests := []struct {
		id     string
		ticker string
		user   int64
		ok     bool
	}{
		{"watchlist_general_1", "", 1, true},
		{"watchlist_BRK.B_12", "BRK.B", 12, true},
		{"watchlist_AAPL_x", "", 0, false},
		{"summary_AAPL", "", 0, false},
		{"watchlist__3", "", 0, false},
	}
	for _, tc := range tests {
		ticker, user, ok := parseWatchlistSession(tc.id)
		assert.Equal(t, tc.ok, ok, tc.id)
		if tc.ok {
			assert.Equal(t, tc.ticker, ticker, tc.id)
			assert.Equal(t, tc.user, user, tc.id)
		}
	}
}
