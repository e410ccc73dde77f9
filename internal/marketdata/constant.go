package marketdata

// StockInfo document sections
const (
	SectionBasicInfo         = "basic_info"
	SectionPriceData         = "price_data"
	SectionFinancialMetrics  = "financial_metrics"
	SectionFinancialHealth   = "financial_health"
	SectionDividendsEarnings = "dividends_earnings"
)

// Data types accepted by the raw financial data endpoint.
const (
	DataTypeComprehensive   = "comprehensive"
	DataTypeHistorical      = "historical"
	DataTypeStatements      = "statements"
	DataTypeNews            = "news"
	DataTypeEvents          = "events"
	DataTypeRecommendations = "recommendations"
)
