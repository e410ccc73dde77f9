package advisor

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Conversation
	Chat(ctx context.Context, input ChatInput) (Answer, error)
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	ClearHistory(ctx context.Context, sessionID string) error

	// Canned analyses
	AnalyzeStock(ctx context.Context, input AnalyzeStockInput) (AnalysisOutput, error)
	Compare(ctx context.Context, input CompareInput) (AnalysisOutput, error)
	AnalyzePortfolio(ctx context.Context, input PortfolioInput) (PortfolioOutput, error)

	// Raw data
	FinancialData(ctx context.Context, input FinancialDataInput) (FinancialDataOutput, error)

	// Watchlist chat
	WatchlistChat(ctx context.Context, input WatchlistChatInput) (Answer, error)
	WatchlistSessions(ctx context.Context, userID int64) (WatchlistSessionsOutput, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
