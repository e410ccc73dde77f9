package yahoo

import (
	"context"
	"fmt"
	"time"

	"financial-agent/internal/marketdata"
)

// News returns up to limit recent headlines for a ticker.
func (p *implProvider) News(ctx context.Context, ticker string, limit int) (marketdata.Document, error) {
	res, err := p.client.Search(ctx, ticker, limit)
	if err != nil {
		return nil, wrap(ticker, err)
	}

	items := make([]map[string]any, 0, len(res.News))
	for _, n := range res.News {
		if n.Title == "" {
			continue
		}
		published := ""
		if n.ProviderPublishTime > 0 {
			published = time.Unix(n.ProviderPublishTime, 0).UTC().Format(time.RFC3339)
		}
		items = append(items, map[string]any{
			"title":       n.Title,
			"summary":     "",
			"url":         n.Link,
			"publishedAt": published,
			"provider":    n.Publisher,
		})
		if len(items) == limit {
			break
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%s: no news: %w", ticker, marketdata.ErrNoData)
	}

	return marketdata.Document{
		"ticker":         ticker,
		"news":           items,
		"current_date":   p.now().Format(dateLayout),
		"data_freshness": dataFreshness,
	}, nil
}
