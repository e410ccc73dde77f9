package yahoo

import (
	"context"
	"errors"
	"fmt"

	"financial-agent/internal/agent"
	"financial-agent/internal/marketdata"
	pkgYahoo "financial-agent/pkg/yahoo"
)

// StockInfo assembles the sectioned company snapshot.
func (p *implProvider) StockInfo(ctx context.Context, ticker string) (marketdata.Document, error) {
	summary, err := p.client.QuoteSummary(ctx, ticker,
		pkgYahoo.ModulePrice,
		pkgYahoo.ModuleSummaryDetail,
		pkgYahoo.ModuleAssetProfile,
		pkgYahoo.ModuleFinancialData,
		pkgYahoo.ModuleDefaultKeyStatistics,
	)
	if err != nil {
		return nil, wrap(ticker, err)
	}

	price := pkgYahoo.Module(summary, pkgYahoo.ModulePrice)
	if price == nil {
		return nil, fmt.Errorf("%s: %w", ticker, marketdata.ErrNoData)
	}
	detail := pkgYahoo.Module(summary, pkgYahoo.ModuleSummaryDetail)
	profile := pkgYahoo.Module(summary, pkgYahoo.ModuleAssetProfile)
	fin := pkgYahoo.Module(summary, pkgYahoo.ModuleFinancialData)
	stats := pkgYahoo.Module(summary, pkgYahoo.ModuleDefaultKeyStatistics)

	var businessSummary any
	if s, ok := pkgYahoo.Field(profile, "longBusinessSummary").(string); ok && s != "" {
		businessSummary = agent.Truncate(s, businessSummaryMaxChars)
	}

	currentPrice := pkgYahoo.Field(fin, "currentPrice")
	if currentPrice == nil {
		currentPrice = pkgYahoo.Field(price, "regularMarketPrice")
	}

	return marketdata.Document{
		"ticker": ticker,
		marketdata.SectionBasicInfo: map[string]any{
			"longName":        pkgYahoo.Field(price, "longName"),
			"shortName":       pkgYahoo.Field(price, "shortName"),
			"sector":          pkgYahoo.Field(profile, "sector"),
			"industry":        pkgYahoo.Field(profile, "industry"),
			"country":         pkgYahoo.Field(profile, "country"),
			"website":         pkgYahoo.Field(profile, "website"),
			"businessSummary": businessSummary,
		},
		marketdata.SectionPriceData: map[string]any{
			"currentPrice":     currentPrice,
			"previousClose":    pkgYahoo.Field(detail, "previousClose"),
			"open":             pkgYahoo.Field(detail, "open"),
			"dayLow":           pkgYahoo.Field(detail, "dayLow"),
			"dayHigh":          pkgYahoo.Field(detail, "dayHigh"),
			"fiftyTwoWeekLow":  pkgYahoo.Field(detail, "fiftyTwoWeekLow"),
			"fiftyTwoWeekHigh": pkgYahoo.Field(detail, "fiftyTwoWeekHigh"),
			"volume":           pkgYahoo.Field(detail, "volume"),
			"averageVolume":    pkgYahoo.Field(detail, "averageVolume"),
		},
		marketdata.SectionFinancialMetrics: map[string]any{
			"marketCap":       pkgYahoo.Field(detail, "marketCap"),
			"enterpriseValue": pkgYahoo.Field(stats, "enterpriseValue"),
			"trailingPE":      pkgYahoo.Field(detail, "trailingPE"),
			"forwardPE":       pkgYahoo.Field(detail, "forwardPE"),
			"pegRatio":        pkgYahoo.Field(stats, "pegRatio"),
			"priceToBook":     pkgYahoo.Field(stats, "priceToBook"),
			"priceToSales":    pkgYahoo.Field(detail, "priceToSalesTrailing12Months"),
			"beta":            pkgYahoo.Field(detail, "beta"),
		},
		marketdata.SectionFinancialHealth: map[string]any{
			"totalRevenue":     pkgYahoo.Field(fin, "totalRevenue"),
			"grossProfits":     pkgYahoo.Field(fin, "grossProfits"),
			"operatingMargins": pkgYahoo.Field(fin, "operatingMargins"),
			"profitMargins":    pkgYahoo.Field(fin, "profitMargins"),
			"returnOnEquity":   pkgYahoo.Field(fin, "returnOnEquity"),
			"returnOnAssets":   pkgYahoo.Field(fin, "returnOnAssets"),
			"debtToEquity":     pkgYahoo.Field(fin, "debtToEquity"),
			"currentRatio":     pkgYahoo.Field(fin, "currentRatio"),
			"quickRatio":       pkgYahoo.Field(fin, "quickRatio"),
		},
		marketdata.SectionDividendsEarnings: map[string]any{
			"dividendYield":     pkgYahoo.Field(detail, "dividendYield"),
			"dividendRate":      pkgYahoo.Field(detail, "dividendRate"),
			"trailingEps":       pkgYahoo.Field(stats, "trailingEps"),
			"forwardEps":        pkgYahoo.Field(stats, "forwardEps"),
			"sharesOutstanding": pkgYahoo.Field(stats, "sharesOutstanding"),
			"bookValue":         pkgYahoo.Field(stats, "bookValue"),
		},
	}, nil
}

// wrap maps client errors onto marketdata sentinels.
func wrap(ticker string, err error) error {
	if errors.Is(err, pkgYahoo.ErrNotFound) {
		return fmt.Errorf("%s: %w", ticker, marketdata.ErrNoData)
	}
	return fmt.Errorf("%s: %w", ticker, err)
}
