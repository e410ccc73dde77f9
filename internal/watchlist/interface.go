package watchlist

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Add(ctx context.Context, input AddInput) (AddOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Remove(ctx context.Context, input RemoveInput) error

	// Symbols returns the user's symbols in insertion order, without quotes.
	Symbols(ctx context.Context, userID int64) ([]string, error)
}
