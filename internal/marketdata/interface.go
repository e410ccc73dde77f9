package marketdata

import "context"

// Provider fetches structured financial documents for tickers.
// Implementations must be safe for concurrent use.
type Provider interface {
	StockInfo(ctx context.Context, ticker string) (Document, error)
	HistoricalPrices(ctx context.Context, ticker, period, interval string) (Document, error)
	FinancialStatements(ctx context.Context, ticker, statementType string, quarterly bool) (Document, error)
	News(ctx context.Context, ticker string, limit int) (Document, error)
	UpcomingEvents(ctx context.Context, ticker string) (Document, error)
	Recommendations(ctx context.Context, ticker string) (Document, error)
	Compare(ctx context.Context, tickers []string, metrics []string) (Document, error)
}
