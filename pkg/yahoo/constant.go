package yahoo

import "time"

const (
	// DefaultBaseURL is the Yahoo Finance query host
	DefaultBaseURL = "https://query2.finance.yahoo.com"

	// DefaultUserAgent is sent on every request; the API rejects empty agents
	DefaultUserAgent = "Mozilla/5.0 (compatible; financial-agent/1.0)"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// DefaultRatePerSec bounds outbound requests per second
	DefaultRatePerSec = 5.0

	quoteSummaryPath = "/v10/finance/quoteSummary/"
	chartPath        = "/v8/finance/chart/"
	searchPath       = "/v1/finance/search"
)

// quoteSummary modules
const (
	ModulePrice                     = "price"
	ModuleSummaryDetail             = "summaryDetail"
	ModuleSummaryProfile            = "summaryProfile"
	ModuleAssetProfile              = "assetProfile"
	ModuleFinancialData             = "financialData"
	ModuleDefaultKeyStatistics      = "defaultKeyStatistics"
	ModuleCalendarEvents            = "calendarEvents"
	ModuleEarnings                  = "earnings"
	ModuleRecommendationTrend       = "recommendationTrend"
	ModuleUpgradeDowngradeHistory   = "upgradeDowngradeHistory"
	ModuleIncomeStatementHistory    = "incomeStatementHistory"
	ModuleIncomeStatementQuarterly  = "incomeStatementHistoryQuarterly"
	ModuleBalanceSheetHistory       = "balanceSheetHistory"
	ModuleBalanceSheetQuarterly     = "balanceSheetHistoryQuarterly"
	ModuleCashflowStatementHistory  = "cashflowStatementHistory"
	ModuleCashflowStatementQuaterly = "cashflowStatementHistoryQuarterly"
)
