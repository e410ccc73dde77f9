package http

import (
	"time"

	"financial-agent/internal/advisor"
	"financial-agent/internal/agent"
	"financial-agent/internal/marketdata"
)

// --- Request DTOs ---

type chatReq struct {
	Query       string         `json:"query"        binding:"required,max=4000"`
	SessionID   string         `json:"session_id"   binding:"max=200"`
	UserContext map[string]any `json:"user_context"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() advisor.ChatInput {
	return advisor.ChatInput{
		Query:       r.Query,
		SessionID:   r.SessionID,
		UserContext: agent.UserContext(r.UserContext),
	}
}

type analyzeReq struct {
	Ticker string `uri:"ticker" binding:"required,ticker"`
}

func (r analyzeReq) validate() error { return nil }

func (r analyzeReq) toInput() advisor.AnalyzeStockInput {
	return advisor.AnalyzeStockInput{Ticker: r.Ticker}
}

type compareReq struct {
	Tickers []string `json:"tickers" binding:"required,min=2,max=5,dive,ticker"`
	Focus   string   `json:"focus"`
}

func (r compareReq) validate() error { return nil }

func (r compareReq) toInput() advisor.CompareInput {
	return advisor.CompareInput{Tickers: r.Tickers}
}

type portfolioReq struct {
	Tickers       []string `json:"tickers"        binding:"required,min=1,dive,ticker"`
	UserGoals     string   `json:"user_goals"     binding:"max=1000"`
	RiskTolerance string   `json:"risk_tolerance" binding:"omitempty,oneof=conservative moderate aggressive"`
}

func (r portfolioReq) validate() error { return nil }

func (r portfolioReq) toInput() advisor.PortfolioInput {
	return advisor.PortfolioInput{
		Tickers:       r.Tickers,
		Goals:         r.UserGoals,
		RiskTolerance: r.RiskTolerance,
	}
}

type financialDataReq struct {
	Ticker   string `uri:"ticker"     binding:"required,ticker"`
	DataType string `form:"data_type"`
	Period   string `form:"period"`
}

func (r financialDataReq) validate() error { return nil }

func (r financialDataReq) toInput() advisor.FinancialDataInput {
	return advisor.FinancialDataInput{
		Ticker:   r.Ticker,
		DataType: r.DataType,
		Period:   r.Period,
	}
}

type sessionReq struct {
	SessionID string `uri:"session_id" binding:"required,max=200"`
}

type watchlistChatReq struct {
	Query  string `json:"query"   binding:"required,max=4000"`
	Ticker string `json:"ticker"  binding:"omitempty,ticker"`
	UserID int64  `json:"user_id" binding:"omitempty,min=1"`
}

func (r watchlistChatReq) validate() error { return nil }

func (r watchlistChatReq) toInput() advisor.WatchlistChatInput {
	return advisor.WatchlistChatInput{
		Query:  r.Query,
		Ticker: r.Ticker,
		UserID: r.UserID,
	}
}

type watchlistSessionsReq struct {
	UserID int64 `form:"user_id" binding:"omitempty,min=1"`
}

// --- Response DTOs ---

type chatResp struct {
	Response          string        `json:"response"`
	FinancialDataUsed agent.Dataset `json:"financial_data_used,omitempty"`
	SessionID         string        `json:"session_id"`
	Timestamp         time.Time     `json:"timestamp"`
	Error             string        `json:"error,omitempty"`
}

func (h *handler) newChatResp(a advisor.Answer) chatResp {
	return chatResp{
		Response:          a.Response,
		FinancialDataUsed: a.Dataset,
		SessionID:         a.SessionID,
		Timestamp:         a.Timestamp,
		Error:             a.Error,
	}
}

type analyzeResp struct {
	Ticker      string           `json:"ticker"`
	Analysis    string           `json:"analysis"`
	DataSources []agent.ToolKind `json:"data_sources"`
	Timestamp   time.Time        `json:"timestamp"`
}

func (h *handler) newAnalyzeResp(out advisor.AnalysisOutput) analyzeResp {
	resp := analyzeResp{
		Analysis:    out.Analysis,
		DataSources: out.DataSources,
		Timestamp:   out.Timestamp,
	}
	if len(out.Tickers) > 0 {
		resp.Ticker = out.Tickers[0]
	}
	return resp
}

type compareResp struct {
	Tickers     []string         `json:"tickers"`
	Comparison  string           `json:"comparison"`
	DataSources []agent.ToolKind `json:"data_sources"`
	Timestamp   time.Time        `json:"timestamp"`
}

func (h *handler) newCompareResp(out advisor.AnalysisOutput) compareResp {
	return compareResp{
		Tickers:     out.Tickers,
		Comparison:  out.Analysis,
		DataSources: out.DataSources,
		Timestamp:   out.Timestamp,
	}
}

type portfolioResp struct {
	Portfolio     []string         `json:"portfolio"`
	Analysis      string           `json:"analysis"`
	DataSources   []agent.ToolKind `json:"data_sources"`
	UserGoals     string           `json:"user_goals"`
	RiskTolerance string           `json:"risk_tolerance"`
	Timestamp     time.Time        `json:"timestamp"`
}

func (h *handler) newPortfolioResp(out advisor.PortfolioOutput) portfolioResp {
	return portfolioResp{
		Portfolio:     out.Tickers,
		Analysis:      out.Analysis,
		DataSources:   out.DataSources,
		UserGoals:     out.Goals,
		RiskTolerance: out.RiskTolerance,
		Timestamp:     out.Timestamp,
	}
}

type financialDataResp struct {
	Ticker   string              `json:"ticker"`
	DataType string              `json:"data_type"`
	Data     marketdata.Document `json:"data"`
}

func (h *handler) newFinancialDataResp(out advisor.FinancialDataOutput) financialDataResp {
	return financialDataResp{Ticker: out.Ticker, DataType: out.DataType, Data: out.Data}
}

type historyResp struct {
	SessionID      string           `json:"session_id"`
	History        []agent.Exchange `json:"history"`
	TotalExchanges int              `json:"total_exchanges"`
}

func (h *handler) newHistoryResp(out advisor.HistoryOutput) historyResp {
	return historyResp{
		SessionID:      out.SessionID,
		History:        out.History,
		TotalExchanges: len(out.History),
	}
}

type messageResp struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatSessionResp struct {
	SessionID    string    `json:"session_id"`
	Ticker       *string   `json:"ticker"`
	Title        string    `json:"title"`
	LastMessage  string    `json:"last_message"`
	Timestamp    time.Time `json:"timestamp"`
	MessageCount int       `json:"message_count"`
}

type watchlistSessionsResp struct {
	Sessions         []chatSessionResp `json:"sessions"`
	TotalSessions    int               `json:"total_sessions"`
	WatchlistSymbols []string          `json:"watchlist_symbols"`
}

func (h *handler) newWatchlistSessionsResp(out advisor.WatchlistSessionsOutput) watchlistSessionsResp {
	sessions := make([]chatSessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = chatSessionResp{
			SessionID:    s.SessionID,
			Title:        s.Title,
			LastMessage:  s.LastMessage,
			Timestamp:    s.Timestamp,
			MessageCount: s.MessageCount,
		}
		if s.Ticker != "" {
			ticker := s.Ticker
			sessions[i].Ticker = &ticker
		}
	}
	return watchlistSessionsResp{
		Sessions:         sessions,
		TotalSessions:    len(sessions),
		WatchlistSymbols: out.Symbols,
	}
}
