package yahoo

import (
	"context"
	"fmt"
	"time"

	"financial-agent/internal/marketdata"
	pkgYahoo "financial-agent/pkg/yahoo"
)

// Recommendations returns the analyst trend and upgrades or downgrades from
// the last six months.
func (p *implProvider) Recommendations(ctx context.Context, ticker string) (marketdata.Document, error) {
	summary, err := p.client.QuoteSummary(ctx, ticker,
		pkgYahoo.ModuleRecommendationTrend,
		pkgYahoo.ModuleUpgradeDowngradeHistory,
	)
	if err != nil {
		return nil, wrap(ticker, err)
	}

	current := []any{}
	if trend, ok := pkgYahoo.Module(summary, pkgYahoo.ModuleRecommendationTrend)["trend"].([]any); ok {
		current = trend
	}

	recent := []map[string]any{}
	cutoff := p.now().Add(-recentChangesWindow)
	if history, ok := pkgYahoo.Module(summary, pkgYahoo.ModuleUpgradeDowngradeHistory)["history"].([]any); ok {
		for _, h := range history {
			m, ok := h.(map[string]any)
			if !ok {
				continue
			}
			epoch := marketdata.Float(m["epochGradeDate"])
			at := time.Unix(int64(epoch), 0).UTC()
			if at.Before(cutoff) {
				continue
			}
			recent = append(recent, map[string]any{
				"GradeDate": at.Format(dateLayout),
				"Firm":      m["firm"],
				"ToGrade":   m["toGrade"],
				"FromGrade": m["fromGrade"],
				"Action":    m["action"],
			})
		}
	}

	if len(current) == 0 && len(recent) == 0 {
		return nil, fmt.Errorf("%s: no analyst coverage: %w", ticker, marketdata.ErrNoData)
	}

	return marketdata.Document{
		"ticker": ticker,
		"recommendations": map[string]any{
			"current":        current,
			"recent_changes": recent,
		},
	}, nil
}
