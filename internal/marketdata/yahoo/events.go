package yahoo

import (
	"context"

	"financial-agent/internal/marketdata"
	pkgYahoo "financial-agent/pkg/yahoo"
)

// UpcomingEvents returns the earnings calendar with company context.
func (p *implProvider) UpcomingEvents(ctx context.Context, ticker string) (marketdata.Document, error) {
	summary, err := p.client.QuoteSummary(ctx, ticker,
		pkgYahoo.ModuleCalendarEvents,
		pkgYahoo.ModulePrice,
		pkgYahoo.ModuleAssetProfile,
		pkgYahoo.ModuleDefaultKeyStatistics,
		pkgYahoo.ModuleFinancialData,
	)
	if err != nil {
		return nil, wrap(ticker, err)
	}

	cal := pkgYahoo.Module(summary, pkgYahoo.ModuleCalendarEvents)
	price := pkgYahoo.Module(summary, pkgYahoo.ModulePrice)
	profile := pkgYahoo.Module(summary, pkgYahoo.ModuleAssetProfile)
	stats := pkgYahoo.Module(summary, pkgYahoo.ModuleDefaultKeyStatistics)
	fin := pkgYahoo.Module(summary, pkgYahoo.ModuleFinancialData)

	calendar := []map[string]any{}
	var nextEarnings any
	if earnings, ok := cal["earnings"].(map[string]any); ok {
		var dates []any
		if list, ok := earnings["earningsDate"].([]any); ok {
			for _, d := range list {
				dates = append(dates, formattedDate(d))
			}
		}
		if len(dates) > 0 {
			nextEarnings = dates[0]
		}
		calendar = append(calendar, map[string]any{
			"earningsDate":    dates,
			"earningsAverage": pkgYahoo.Field(earnings, "earningsAverage"),
			"earningsLow":     pkgYahoo.Field(earnings, "earningsLow"),
			"earningsHigh":    pkgYahoo.Field(earnings, "earningsHigh"),
			"revenueAverage":  pkgYahoo.Field(earnings, "revenueAverage"),
			"exDividendDate":  formattedDate(cal["exDividendDate"]),
			"dividendDate":    formattedDate(cal["dividendDate"]),
		})
	}

	now := p.now()
	return marketdata.Document{
		"ticker":            ticker,
		"current_date":      now.Format(dateTimeLayout),
		"current_quarter":   marketdata.CurrentQuarter(now),
		"earnings_calendar": calendar,
		"company_info": map[string]any{
			"name":                    pkgYahoo.Field(price, "longName"),
			"sector":                  pkgYahoo.Field(profile, "sector"),
			"industry":                pkgYahoo.Field(profile, "industry"),
			"nextEarningsDate":        nextEarnings,
			"earningsQuarterlyGrowth": pkgYahoo.Field(stats, "earningsQuarterlyGrowth"),
			"revenueQuarterlyGrowth":  pkgYahoo.Field(fin, "revenueGrowth"),
		},
		"note": eventsNote,
	}, nil
}
