package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"financial-agent/internal/marketdata"
)

// provider caches successful documents from an upstream Provider.
// Errors are never cached.
type provider struct {
	next  marketdata.Provider
	store Store
}

var _ marketdata.Provider = (*provider)(nil)

// Wrap returns next decorated with store.
func Wrap(next marketdata.Provider, store Store) marketdata.Provider {
	return &provider{next: next, store: store}
}

func (p *provider) do(ctx context.Context, kind string, key string, fetch func() (marketdata.Document, error)) (marketdata.Document, error) {
	key = kind + ":" + key
	if doc, ok := p.store.Get(ctx, key); ok {
		lookups.WithLabelValues(kind, "hit").Inc()
		return doc, nil
	}
	lookups.WithLabelValues(kind, "miss").Inc()

	doc, err := fetch()
	if err != nil {
		return nil, err
	}
	if len(doc) > 0 {
		p.store.Set(ctx, key, doc)
	}
	return doc, nil
}

func (p *provider) StockInfo(ctx context.Context, ticker string) (marketdata.Document, error) {
	return p.do(ctx, kindStockInfo, ticker, func() (marketdata.Document, error) {
		return p.next.StockInfo(ctx, ticker)
	})
}

func (p *provider) HistoricalPrices(ctx context.Context, ticker, period, interval string) (marketdata.Document, error) {
	return p.do(ctx, kindHistorical, ticker+":"+period+":"+interval, func() (marketdata.Document, error) {
		return p.next.HistoricalPrices(ctx, ticker, period, interval)
	})
}

func (p *provider) FinancialStatements(ctx context.Context, ticker, statementType string, quarterly bool) (marketdata.Document, error) {
	key := ticker + ":" + statementType + ":" + strconv.FormatBool(quarterly)
	return p.do(ctx, kindStatements, key, func() (marketdata.Document, error) {
		return p.next.FinancialStatements(ctx, ticker, statementType, quarterly)
	})
}

func (p *provider) News(ctx context.Context, ticker string, limit int) (marketdata.Document, error) {
	return p.do(ctx, kindNews, ticker+":"+strconv.Itoa(limit), func() (marketdata.Document, error) {
		return p.next.News(ctx, ticker, limit)
	})
}

func (p *provider) UpcomingEvents(ctx context.Context, ticker string) (marketdata.Document, error) {
	return p.do(ctx, kindEvents, ticker, func() (marketdata.Document, error) {
		return p.next.UpcomingEvents(ctx, ticker)
	})
}

func (p *provider) Recommendations(ctx context.Context, ticker string) (marketdata.Document, error) {
	return p.do(ctx, kindRecommendations, ticker, func() (marketdata.Document, error) {
		return p.next.Recommendations(ctx, ticker)
	})
}

func (p *provider) Compare(ctx context.Context, tickers []string, metrics []string) (marketdata.Document, error) {
	key := sortedJoin(tickers) + ":" + sortedJoin(metrics)
	return p.do(ctx, kindCompare, key, func() (marketdata.Document, error) {
		return p.next.Compare(ctx, tickers, metrics)
	})
}

func sortedJoin(s []string) string {
	c := append([]string(nil), s...)
	sort.Strings(c)
	return strings.Join(c, ",")
}
