package advisor

import "financial-agent/internal/agent"

// Ticker bounds for comparisons.
const (
	MinCompareTickers = 2
	MaxCompareTickers = 5
)

// Risk tolerance levels.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// Session ids.
const (
	DefaultSessionID   = "default"
	PortfolioSessionID = "portfolio_analysis"
	SummarySessionFmt  = "summary_%s"
	CompareSessionFmt  = "comparison_%s"

	WatchlistSessionPrefix = "watchlist_"
	WatchlistSessionFmt    = "watchlist_%s_%d"
	WatchlistGeneral       = "general"
	WatchlistPlatform      = "watchlist_chat"
)

// Canned analysis queries.
const (
	AnalyzeStockQueryFmt = "Provide a comprehensive analysis of %s stock including current performance, financial health, growth prospects, risks, and investment recommendation."
	CompareQueryFmt      = "Compare and analyze %s stocks. Provide detailed comparison of their financial metrics, growth prospects, risks, and which might be better investments and why."
	PortfolioQueryFmt    = "Analyze my portfolio containing %s. Provide diversification analysis, risk assessment, performance evaluation, and recommendations for improvement. User goals: %s Risk tolerance: %s"
)

// Watchlist chat framing.
const (
	WatchlistAvailableFmt = "%s\n\nAvailable stocks for analysis: %s"
	WatchlistFocusFmt     = "Focus on %s: %s"
	WatchlistOutsideFmt   = "\n\nNote: %s is not in the user's watchlist but analysis is available."

	WatchlistTitleFmt     = "%s Analysis"
	WatchlistTitleGeneral = "Watchlist Discussion"
	LastMessageMaxChars   = 100
)

// DefaultUserID is used when a request names no user.
const DefaultUserID int64 = 1

// DefaultHistoryPeriod is used for raw historical data requests without a period.
const DefaultHistoryPeriod = agent.DefaultPeriod

// DemoWatchlist stands in for an empty watchlist.
var DemoWatchlist = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA"}
