package usecase

import (
	"context"
	"strings"

	"financial-agent/internal/watchlist"
	repo "financial-agent/internal/watchlist/repository"
)

// Add tracks a new symbol for the user after confirming it has a live price.
func (uc *implUseCase) Add(ctx context.Context, input watchlist.AddInput) (watchlist.AddOutput, error) {
	symbol, err := normalize(input.Symbol)
	if err != nil {
		return watchlist.AddOutput{}, err
	}
	userID := userOrDefault(input.UserID)

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{UserID: userID, Symbol: symbol})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add GetOneItem: %v", err)
		return watchlist.AddOutput{}, err
	}
	if existing.ID != "" {
		return watchlist.AddOutput{}, watchlist.ErrDuplicateSymbol
	}

	quote, err := uc.quote(ctx, symbol)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Add quote %s: %v", symbol, err)
		return watchlist.AddOutput{}, watchlist.ErrSymbolNotFound
	}
	if quote.Price <= 0 {
		return watchlist.AddOutput{}, watchlist.ErrSymbolNotFound
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:      uc.newID(),
		UserID:  userID,
		Symbol:  symbol,
		Notes:   strings.TrimSpace(input.Notes),
		AddedAt: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateItem: %v", err)
		return watchlist.AddOutput{}, err
	}

	return watchlist.AddOutput{Item: watchlist.QuotedItem{Item: item, Quote: quote}}, nil
}
