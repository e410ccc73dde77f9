package repository

import "time"

// CreateItemOptions holds parameters for inserting a new watchlist item.
type CreateItemOptions struct {
	ID      string
	UserID  int64
	Symbol  string
	Notes   string
	AddedAt time.Time
}

// GetOneItemOptions holds filter parameters for fetching a single item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID     string
	UserID int64
	Symbol string
}

// ListItemsOptions holds filter parameters for listing a user's items.
type ListItemsOptions struct {
	UserID  int64
	OrderBy string
}
