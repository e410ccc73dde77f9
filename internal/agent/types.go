package agent

import (
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// ToolKind identifies one kind of financial data fetch. The set is closed.
type ToolKind string

const (
	ToolCompare         ToolKind = "COMPARE"
	ToolHistorical      ToolKind = "HISTORICAL"
	ToolStatements      ToolKind = "STATEMENTS"
	ToolNews            ToolKind = "NEWS"
	ToolUpcomingEvents  ToolKind = "UPCOMING_EVENTS"
	ToolRecommendations ToolKind = "RECOMMENDATIONS"
	ToolStockInfo       ToolKind = "STOCK_INFO"
)

// ToolKinds returns every ToolKind in classification order.
func ToolKinds() []ToolKind {
	return []ToolKind{
		ToolCompare,
		ToolHistorical,
		ToolStatements,
		ToolNews,
		ToolUpcomingEvents,
		ToolRecommendations,
		ToolStockInfo,
	}
}

// Valid reports whether k is one of the known kinds.
func (k ToolKind) Valid() bool {
	for _, known := range ToolKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Parameter keys carried in DataRequest.Params.
const (
	ParamPeriod        = "period"
	ParamInterval      = "interval"
	ParamStatementType = "statement_type"
	ParamQuarterly     = "quarterly"
	ParamLimit         = "limit"
	ParamMetrics       = "metrics"
)

// Parameter defaults applied when a request leaves them unset.
const (
	DefaultPeriod    = "1y"
	DefaultInterval  = "1d"
	DefaultNewsLimit = 10

	StatementIncome       = "income_stmt"
	StatementBalanceSheet = "balance_sheet"
	StatementCashFlow     = "cashflow"
)

// DataRequest is one fetch the dispatcher must perform.
// COMPARE uses Tickers, every other kind uses Ticker.
type DataRequest struct {
	Kind    ToolKind          `json:"tool_kind"`
	Ticker  string            `json:"ticker,omitempty"`
	Tickers []string          `json:"tickers,omitempty"`
	Params  map[string]string `json:"parameters,omitempty"`
}

// Param returns the named parameter or def when unset.
func (r DataRequest) Param(key, def string) string {
	if v, ok := r.Params[key]; ok && v != "" {
		return v
	}
	return def
}

// WithTicker returns a copy of r whose ticker-bearing fields all point at ticker.
func (r DataRequest) WithTicker(ticker string) DataRequest {
	out := DataRequest{Kind: r.Kind, Params: r.Params}
	if r.Kind == ToolCompare {
		out.Tickers = []string{ticker}
		return out
	}
	out.Ticker = ticker
	return out
}

// Key identifies a request by kind, ticker set and parameters.
func (r DataRequest) Key() string {
	tickers := make([]string, 0, len(r.Tickers)+1)
	if r.Ticker != "" {
		tickers = append(tickers, r.Ticker)
	}
	tickers = append(tickers, r.Tickers...)
	sort.Strings(tickers)
	tickers = compactSorted(tickers)

	keys := make([]string, 0, len(r.Params))
	for k := range r.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(string(r.Kind))
	b.WriteByte('|')
	b.WriteString(strings.Join(tickers, ","))
	for _, k := range keys {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(r.Params[k])
	}
	return b.String()
}

func compactSorted(s []string) []string {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Dedupe drops requests whose Key was already seen, keeping first occurrences in order.
func Dedupe(reqs []DataRequest) []DataRequest {
	seen := make(map[string]struct{}, len(reqs))
	out := make([]DataRequest, 0, len(reqs))
	for _, r := range reqs {
		k := r.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Document is an opaque structured payload returned by a data provider.
type Document = map[string]any

// FetchOutcome is the result of one DataRequest: a document or a failure reason.
type FetchOutcome struct {
	Document Document
	Reason   string
	failed   bool
}

// Success wraps a fetched document.
func Success(doc Document) FetchOutcome {
	return FetchOutcome{Document: doc}
}

// Failure records why a fetch produced nothing usable.
func Failure(reason string) FetchOutcome {
	return FetchOutcome{Reason: reason, failed: true}
}

// OK reports whether the fetch succeeded.
func (o FetchOutcome) OK() bool { return !o.failed }

// MarshalJSON marks failures explicitly so the generation backend can tell them apart.
func (o FetchOutcome) MarshalJSON() ([]byte, error) {
	if o.failed {
		return json.Marshal(map[string]any{
			"status": "unavailable",
			"error":  o.Reason,
		})
	}
	return json.Marshal(map[string]any{
		"status": "ok",
		"data":   o.Document,
	})
}

// Dataset maps each dispatched tool kind to its outcome.
type Dataset map[ToolKind]FetchOutcome

// Failures returns the kinds whose fetch failed.
func (d Dataset) Failures() []ToolKind {
	var out []ToolKind
	for _, k := range ToolKinds() {
		if o, ok := d[k]; ok && !o.OK() {
			out = append(out, k)
		}
	}
	return out
}

// Exchange is one completed query/response pair of a session.
type Exchange struct {
	Timestamp       time.Time `json:"timestamp"`
	UserQuery       string    `json:"user_query"`
	ResponseSummary string    `json:"response_summary"`
}

// Ellipsis is appended to truncated response summaries.
const Ellipsis = "..."

// NewExchange builds an Exchange, capping the summary at maxChars runes.
func NewExchange(at time.Time, query, response string, maxChars int) Exchange {
	return Exchange{
		Timestamp:       at,
		UserQuery:       query,
		ResponseSummary: Truncate(response, maxChars),
	}
}

// Truncate cuts s to max runes and appends Ellipsis when it was longer.
// A non-positive max leaves s untouched.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + Ellipsis
}

// UserContext is the optional free-form bag supplied with a query.
type UserContext map[string]any

// User context keys.
const (
	ContextFocusedTicker    = "focused_ticker"
	ContextFocusedTickerAlt = "focusedTicker"
	ContextWatchlist        = "watchlist"
	ContextPlatform         = "platform"
)

// FocusedTicker returns the uppercased focus ticker, or "" when absent.
func (c UserContext) FocusedTicker() string {
	for _, key := range []string{ContextFocusedTicker, ContextFocusedTickerAlt} {
		if v, ok := c[key].(string); ok {
			if t := strings.ToUpper(strings.TrimSpace(v)); t != "" {
				return t
			}
		}
	}
	return ""
}
