package yahoo

import "context"

// IClient is a thin client for the public Yahoo Finance JSON endpoints.
// Implementations are safe for concurrent use.
type IClient interface {
	// QuoteSummary returns the requested modules keyed by module name
	QuoteSummary(ctx context.Context, symbol string, modules ...string) (map[string]any, error)

	// Chart returns OHLCV bars for a range and interval (e.g. "1y", "1d")
	Chart(ctx context.Context, symbol, rangeStr, interval string) (*ChartResult, error)

	// Search returns news items related to a query
	Search(ctx context.Context, query string, newsCount int) (*SearchResult, error)
}

// New creates a new Yahoo Finance client
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
