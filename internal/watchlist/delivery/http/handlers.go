package http

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"financial-agent/pkg/response"
)

// Add godoc
// @Summary     Add a stock to the watchlist
// @Description Verifies the symbol has a live price and stores it for the user.
// @Tags        Watchlist
// @Accept      json
// @Produce     json
// @Param       user_id query int    false "User ID (default: 1)"
// @Param       body    body  addReq true  "Symbol and notes"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request - invalid or duplicate symbol"
// @Failure     404 {object} response.Resp "Not Found - symbol has no price"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/watchlist [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddResp(output))
}

// List godoc
// @Summary     List the watchlist
// @Description Returns the user's stocks with their latest price, change and volume.
// @Tags        Watchlist
// @Accept      json
// @Produce     json
// @Param       user_id query int false "User ID (default: 1)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/watchlist [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Remove godoc
// @Summary     Remove a stock from the watchlist
// @Tags        Watchlist
// @Accept      json
// @Produce     json
// @Param       symbol  path  string true  "Stock symbol"
// @Param       user_id query int    false "User ID (default: 1)"
// @Success     200 {object} removeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/watchlist/{symbol} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Remove(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, removeResp{
		Message: fmt.Sprintf("Stock %s removed from watchlist successfully", strings.ToUpper(req.Symbol)),
	})
}
