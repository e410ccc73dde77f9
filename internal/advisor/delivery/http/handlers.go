package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"financial-agent/internal/advisor"
	"financial-agent/pkg/response"
)

// Chat godoc
// @Summary     Chat with the financial assistant
// @Description Resolves tickers and data needs from the query, fetches live data and answers with session memory.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Query, optional session id and user context"
// @Success     200 {object} chatResp "error_code 1 with the error field set when no AI backend is configured"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.answerError(c, output, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// answerError keeps the chat envelope when no backend is configured so the
// client still gets a readable response and the error field.
func (h *handler) answerError(c *gin.Context, output advisor.Answer, err error) {
	if !errors.Is(err, advisor.ErrGenerationUnavailable) {
		response.Error(c, h.mapError(err))
		return
	}
	if output.Error == "" {
		output.Error = err.Error()
	}
	response.ErrorWithData(c, output.Error, h.newChatResp(output))
}

// AnalyzeStock godoc
// @Summary     Analyze one stock
// @Description Comprehensive analysis covering performance, financial health, growth, risks and a recommendation.
// @Tags        AI
// @Produce     json
// @Param       ticker path string true "Stock symbol"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "AI analysis failed"
// @Failure     503 {object} response.Resp "AI service not configured"
// @Router      /api/v1/ai/analyze/{ticker} [POST]
func (h *handler) AnalyzeStock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AnalyzeStock(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeStock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Compare godoc
// @Summary     Compare stocks
// @Description Side by side analysis of 2 to 5 stocks.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body compareReq true "Tickers to compare"
// @Success     200 {object} compareResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "AI analysis failed"
// @Failure     503 {object} response.Resp "AI service not configured"
// @Router      /api/v1/ai/compare [POST]
func (h *handler) Compare(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompareReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Compare(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Compare: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCompareResp(output))
}

// AnalyzePortfolio godoc
// @Summary     Analyze a portfolio
// @Description Diversification, risk and performance review with recommendations.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body portfolioReq true "Holdings, goals and risk tolerance"
// @Success     200 {object} portfolioResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "AI analysis failed"
// @Failure     503 {object} response.Resp "AI service not configured"
// @Router      /api/v1/ai/portfolio/analyze [POST]
func (h *handler) AnalyzePortfolio(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPortfolioReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AnalyzePortfolio(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzePortfolio: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPortfolioResp(output))
}

// FinancialData godoc
// @Summary     Raw financial data
// @Description Returns the provider document for one data type.
// @Tags        AI
// @Produce     json
// @Param       ticker    path  string true  "Stock symbol"
// @Param       data_type query string false "comprehensive (default), historical, statements, news, events, recommendations"
// @Param       period    query string false "History period for data_type=historical (default: 1y)"
// @Success     200 {object} financialDataResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/ai/financial-data/{ticker} [GET]
func (h *handler) FinancialData(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFinancialDataReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.FinancialData(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.FinancialData: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFinancialDataResp(output))
}

// History godoc
// @Summary     Conversation history
// @Tags        AI
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} historyResp
// @Router      /api/v1/ai/conversation-history/{session_id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, req.SessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Tags        AI
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} messageResp
// @Router      /api/v1/ai/conversation-history/{session_id} [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ClearHistory(ctx, req.SessionID); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageResp{
		Message:   fmt.Sprintf("Conversation history cleared for session %s", req.SessionID),
		SessionID: req.SessionID,
	})
}

// WatchlistChat godoc
// @Summary     Chat about watchlist stocks
// @Description Frames the question with the user's watchlist; an optional ticker focuses every data fetch.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body watchlistChatReq true "Query, optional ticker and user id"
// @Success     200 {object} chatResp "error_code 1 with the error field set when no AI backend is configured"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/ai/watchlist/chat [POST]
func (h *handler) WatchlistChat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWatchlistChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.WatchlistChat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.WatchlistChat: %v", err)
		h.answerError(c, output, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// WatchlistSessions godoc
// @Summary     List watchlist chat sessions
// @Tags        AI
// @Produce     json
// @Param       user_id query int false "User ID (default: 1)"
// @Success     200 {object} watchlistSessionsResp
// @Router      /api/v1/ai/watchlist/chat-sessions [GET]
func (h *handler) WatchlistSessions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWatchlistSessionsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.WatchlistSessions(ctx, req.UserID)
	if err != nil {
		h.l.Errorf(ctx, "uc.WatchlistSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWatchlistSessionsResp(output))
}

// DeleteSession godoc
// @Summary     Delete a watchlist chat session
// @Tags        AI
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} messageResp
// @Router      /api/v1/ai/watchlist/chat-sessions/{session_id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSessionReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteSession(ctx, req.SessionID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, messageResp{
		Message:   fmt.Sprintf("Chat session %s deleted successfully", req.SessionID),
		SessionID: req.SessionID,
	})
}
