package http

import (
	"github.com/gin-gonic/gin"
)

// processAddReq binds and validates the add-to-watchlist body and user query.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindQuery(&req.userReq); err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRemoveReq binds and validates the symbol path param and user query.
func (h *handler) processRemoveReq(c *gin.Context) (removeReq, error) {
	var req removeReq
	if err := c.ShouldBindQuery(&req.userReq); err != nil {
		return req, err
	}
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
