package advisor

import (
	"time"

	"financial-agent/internal/agent"
	"financial-agent/internal/marketdata"
)

// Answer is one resolved turn. When generation failed Error is set and
// Response carries a readable explanation.
type Answer struct {
	Response  string
	Dataset   agent.Dataset
	SessionID string
	Timestamp time.Time
	Error     string
}

// --- UseCase Inputs ---

type ChatInput struct {
	Query       string
	SessionID   string
	UserContext agent.UserContext
}

type AnalyzeStockInput struct {
	Ticker string
}

type CompareInput struct {
	Tickers []string
}

type PortfolioInput struct {
	Tickers       []string
	Goals         string
	RiskTolerance string
}

type FinancialDataInput struct {
	Ticker   string
	DataType string
	Period   string
}

type WatchlistChatInput struct {
	Query  string
	Ticker string
	UserID int64
}

// --- UseCase Outputs ---

// AnalysisOutput is the result of a single or multi ticker analysis.
type AnalysisOutput struct {
	Tickers     []string
	Analysis    string
	DataSources []agent.ToolKind
	Timestamp   time.Time
}

type PortfolioOutput struct {
	AnalysisOutput
	Goals         string
	RiskTolerance string
}

type FinancialDataOutput struct {
	Ticker   string
	DataType string
	Data     marketdata.Document
}

type HistoryOutput struct {
	SessionID string
	History   []agent.Exchange
}

// ChatSession summarizes one watchlist conversation.
type ChatSession struct {
	SessionID    string
	Ticker       string
	Title        string
	LastMessage  string
	Timestamp    time.Time
	MessageCount int
}

type WatchlistSessionsOutput struct {
	Sessions []ChatSession
	Symbols  []string
}
