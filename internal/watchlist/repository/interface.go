package repository

import (
	"context"

	"financial-agent/internal/watchlist"
)

// Repository is the composed interface for the watchlist data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for watchlist items.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (watchlist.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (watchlist.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]watchlist.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
