package yahoo

import (
	"context"
	"fmt"
	"time"

	"financial-agent/internal/marketdata"
)

// HistoricalPrices returns daily (or other interval) OHLCV rows.
func (p *implProvider) HistoricalPrices(ctx context.Context, ticker, period, interval string) (marketdata.Document, error) {
	chart, err := p.client.Chart(ctx, ticker, period, interval)
	if err != nil {
		return nil, wrap(ticker, err)
	}
	if len(chart.Timestamps) == 0 {
		return nil, fmt.Errorf("%s: no historical data: %w", ticker, marketdata.ErrNoData)
	}

	rows := make([]map[string]any, 0, len(chart.Timestamps))
	for i, ts := range chart.Timestamps {
		rows = append(rows, map[string]any{
			"Date":   time.Unix(ts, 0).UTC().Format(dateLayout),
			"Open":   floatAt(chart.Open, i),
			"High":   floatAt(chart.High, i),
			"Low":    floatAt(chart.Low, i),
			"Close":  floatAt(chart.Close, i),
			"Volume": intAt(chart.Volume, i),
		})
	}

	return marketdata.Document{
		"ticker":   ticker,
		"period":   period,
		"interval": interval,
		"currency": chart.Currency,
		"data":     rows,
	}, nil
}

func floatAt(s []*float64, i int) any {
	if i >= len(s) || s[i] == nil {
		return nil
	}
	return *s[i]
}

func intAt(s []*int64, i int) any {
	if i >= len(s) || s[i] == nil {
		return nil
	}
	return *s[i]
}
