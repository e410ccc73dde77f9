package yahoo

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"financial-agent/internal/marketdata"
)

// Compare fetches StockInfo for every ticker concurrently and picks the
// requested metrics. A failing ticker carries its own error entry.
func (p *implProvider) Compare(ctx context.Context, tickers []string, metrics []string) (marketdata.Document, error) {
	if len(metrics) == 0 {
		metrics = marketdata.DefaultCompareMetrics
	}

	var (
		mu         sync.Mutex
		comparison = make(map[string]any, len(tickers))
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, ticker := range tickers {
		g.Go(func() error {
			entry := p.compareOne(gctx, ticker, metrics)
			mu.Lock()
			comparison[ticker] = entry
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return marketdata.Document{
		"comparison": comparison,
		"metrics":    metrics,
	}, nil
}

func (p *implProvider) compareOne(ctx context.Context, ticker string, metrics []string) map[string]any {
	info, err := p.StockInfo(ctx, ticker)
	if err != nil {
		p.l.Debugf(ctx, "%s: %s: %v", logPrefixCompare, ticker, err)
		return map[string]any{"error": err.Error()}
	}

	out := make(map[string]any, len(metrics))
	for _, metric := range metrics {
		var value any
		for _, section := range compareSections {
			sec, ok := info[section].(map[string]any)
			if !ok {
				continue
			}
			if v, ok := sec[metric]; ok {
				value = v
				break
			}
		}
		out[metric] = value
	}
	return out
}
