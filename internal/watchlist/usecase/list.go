package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"financial-agent/internal/marketdata"
	"financial-agent/internal/watchlist"
	repo "financial-agent/internal/watchlist/repository"
)

// List returns the user's items with their latest quotes. A failed quote
// leaves that item's price fields at zero.
func (uc *implUseCase) List(ctx context.Context, input watchlist.ListInput) (watchlist.ListOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{UserID: userOrDefault(input.UserID)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return watchlist.ListOutput{}, err
	}

	out := make([]watchlist.QuotedItem, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(quoteConcurrency)
	for i, item := range items {
		out[i].Item = item
		g.Go(func() error {
			q, err := uc.quote(gctx, item.Symbol)
			if err != nil {
				uc.l.Warnf(ctx, "uc.List quote %s: %v", item.Symbol, err)
				q = marketdata.Quote{Symbol: item.Symbol}
			}
			out[i].Quote = q
			return nil
		})
	}
	_ = g.Wait()

	return watchlist.ListOutput{Items: out}, nil
}

// Symbols returns the user's symbols in insertion order.
func (uc *implUseCase) Symbols(ctx context.Context, userID int64) ([]string, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{UserID: userOrDefault(userID)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Symbols ListItems: %v", err)
		return nil, err
	}
	symbols := make([]string, len(items))
	for i, item := range items {
		symbols[i] = item.Symbol
	}
	return symbols, nil
}
