package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCompareReq(c *gin.Context) (compareReq, error) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processPortfolioReq(c *gin.Context) (portfolioReq, error) {
	var req portfolioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFinancialDataReq binds the ticker path param and data_type/period query.
func (h *handler) processFinancialDataReq(c *gin.Context) (financialDataReq, error) {
	var req financialDataReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSessionReq(c *gin.Context) (sessionReq, error) {
	var req sessionReq
	err := c.ShouldBindUri(&req)
	return req, err
}

func (h *handler) processWatchlistChatReq(c *gin.Context) (watchlistChatReq, error) {
	var req watchlistChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processWatchlistSessionsReq(c *gin.Context) (watchlistSessionsReq, error) {
	var req watchlistSessionsReq
	err := c.ShouldBindQuery(&req)
	return req, err
}
