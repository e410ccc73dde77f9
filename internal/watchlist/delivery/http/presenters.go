package http

import (
	"math"

	"financial-agent/internal/watchlist"
	"financial-agent/pkg/response"
)

// --- Request DTOs ---

type userReq struct {
	UserID int64 `form:"user_id" binding:"omitempty,min=1"`
}

func (r userReq) userID() int64 {
	if r.UserID <= 0 {
		return watchlist.DefaultUserID
	}
	return r.UserID
}

type addReq struct {
	userReq
	Symbol string `json:"symbol" binding:"required,ticker"`
	Notes  string `json:"notes"  binding:"max=1000"`
}

func (r addReq) validate() error { return nil }

func (r addReq) toInput() watchlist.AddInput {
	return watchlist.AddInput{
		UserID: r.userID(),
		Symbol: r.Symbol,
		Notes:  r.Notes,
	}
}

type listReq struct {
	userReq
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() watchlist.ListInput {
	return watchlist.ListInput{UserID: r.userID()}
}

type removeReq struct {
	userReq
	Symbol string `uri:"symbol" binding:"required,ticker"`
}

func (r removeReq) validate() error { return nil }

func (r removeReq) toInput() watchlist.RemoveInput {
	return watchlist.RemoveInput{
		UserID: r.userID(),
		Symbol: r.Symbol,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID            string            `json:"id"`
	Symbol        string            `json:"symbol"`
	Name          string            `json:"name,omitempty"`
	CurrentPrice  float64           `json:"current_price"`
	Change        float64           `json:"change"`
	ChangePercent float64           `json:"change_percent"`
	Volume        int64             `json:"volume"`
	Notes         string            `json:"notes"`
	AddedDate     response.DateTime `json:"added_date"`
}

func newItemResp(it watchlist.QuotedItem) itemResp {
	return itemResp{
		ID:            it.Item.ID,
		Symbol:        it.Item.Symbol,
		Name:          it.Quote.Name,
		CurrentPrice:  round2(it.Quote.Price),
		Change:        round2(it.Quote.Change),
		ChangePercent: round2(it.Quote.ChangePercent),
		Volume:        it.Quote.Volume,
		Notes:         it.Item.Notes,
		AddedDate:     response.DateTime(it.Item.AddedAt),
	}
}

func (h *handler) newAddResp(out watchlist.AddOutput) itemResp {
	return newItemResp(out.Item)
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out watchlist.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{Items: items, Total: len(items)}
}

type removeResp struct {
	Message string `json:"message"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
