package watchlist

import (
	"time"

	"financial-agent/internal/marketdata"
)

// DefaultUserID is used when a request names no user.
const DefaultUserID int64 = 1

// Item is one tracked symbol of a user's watchlist.
type Item struct {
	ID      string
	UserID  int64
	Symbol  string
	Notes   string
	AddedAt time.Time
}

// QuotedItem is an Item enriched with its latest quote. Quote is zero when
// the price could not be fetched.
type QuotedItem struct {
	Item  Item
	Quote marketdata.Quote
}

// --- UseCase Inputs ---

type AddInput struct {
	UserID int64
	Symbol string
	Notes  string
}

type ListInput struct {
	UserID int64
}

type RemoveInput struct {
	UserID int64
	Symbol string
}

// --- UseCase Outputs ---

type AddOutput struct {
	Item QuotedItem
}

type ListOutput struct {
	Items []QuotedItem
}
