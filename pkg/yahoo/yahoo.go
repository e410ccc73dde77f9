package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
)

func newClientImpl(cfg Config) *clientImpl {
	burst := int(cfg.RatePerSec)
	if burst < 1 {
		burst = 1
	}
	return &clientImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSec), burst),
		httpClient: cfg.HTTPClient,
	}
}

// QuoteSummary returns the requested modules keyed by module name
func (c *clientImpl) QuoteSummary(ctx context.Context, symbol string, modules ...string) (map[string]any, error) {
	if symbol == "" || len(modules) == 0 {
		return nil, fmt.Errorf("yahoo: symbol and at least one module are required")
	}
	q := url.Values{}
	q.Set("modules", strings.Join(modules, ","))

	var env quoteSummaryEnvelope
	if err := c.get(ctx, quoteSummaryPath+url.PathEscape(symbol), q, &env); err != nil {
		return nil, err
	}
	if env.QuoteSummary.Error != nil {
		return nil, apiErr(http.StatusOK, env.QuoteSummary.Error)
	}
	if len(env.QuoteSummary.Result) == 0 {
		return nil, ErrNotFound
	}
	return env.QuoteSummary.Result[0], nil
}

// Chart returns OHLCV bars for a range and interval
func (c *clientImpl) Chart(ctx context.Context, symbol, rangeStr, interval string) (*ChartResult, error) {
	if symbol == "" {
		return nil, fmt.Errorf("yahoo: symbol is required")
	}
	q := url.Values{}
	q.Set("range", rangeStr)
	q.Set("interval", interval)
	q.Set("includePrePost", "false")

	var env chartEnvelope
	if err := c.get(ctx, chartPath+url.PathEscape(symbol), q, &env); err != nil {
		return nil, err
	}
	if env.Chart.Error != nil {
		return nil, apiErr(http.StatusOK, env.Chart.Error)
	}
	if len(env.Chart.Result) == 0 {
		return nil, ErrNotFound
	}

	wire := env.Chart.Result[0]
	out := &ChartResult{
		Symbol:     wire.Meta.Symbol,
		Currency:   wire.Meta.Currency,
		Timestamps: wire.Timestamp,
	}
	if len(wire.Indicators.Quote) > 0 {
		quote := wire.Indicators.Quote[0]
		out.Open, out.High, out.Low, out.Close, out.Volume = quote.Open, quote.High, quote.Low, quote.Close, quote.Volume
	}
	return out, nil
}

// Search returns news items related to a query
func (c *clientImpl) Search(ctx context.Context, query string, newsCount int) (*SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", "0")
	q.Set("newsCount", strconv.Itoa(newsCount))

	var env searchEnvelope
	if err := c.get(ctx, searchPath, q, &env); err != nil {
		return nil, err
	}
	return &SearchResult{News: env.News}, nil
}

// get waits on the limiter, performs the request and decodes JSON into out.
func (c *clientImpl) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("yahoo: failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo: failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		var env struct {
			Finance struct {
				Error *apiErrorBody `json:"error"`
			} `json:"finance"`
		}
		_ = json.Unmarshal(body, &env)
		return apiErr(resp.StatusCode, env.Finance.Error)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("yahoo: failed to decode response: %w", err)
	}
	return nil
}

func apiErr(status int, body *apiErrorBody) error {
	e := &APIError{StatusCode: status}
	if body != nil {
		e.Code, e.Description = body.Code, body.Description
		if strings.EqualFold(body.Code, "Not Found") {
			return ErrNotFound
		}
	}
	return e
}

// Raw unwraps Yahoo's {"raw": x, "fmt": "..."} value objects. Other values
// pass through unchanged and empty objects become nil.
func Raw(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if raw, ok := m["raw"]; ok {
		return raw
	}
	if len(m) == 0 {
		return nil
	}
	return v
}

// Field reads module[key] and unwraps it with Raw.
func Field(module map[string]any, key string) any {
	if module == nil {
		return nil
	}
	return Raw(module[key])
}

// Module returns summary[name] as a map, or nil.
func Module(summary map[string]any, name string) map[string]any {
	m, _ := summary[name].(map[string]any)
	return m
}
