package usecase

import (
	"context"

	"financial-agent/internal/watchlist"
	repo "financial-agent/internal/watchlist/repository"
)

// Remove drops a symbol from the user's watchlist. Returns ErrItemNotFound
// when the symbol is not tracked.
func (uc *implUseCase) Remove(ctx context.Context, input watchlist.RemoveInput) error {
	symbol, err := normalize(input.Symbol)
	if err != nil {
		return err
	}

	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{
		UserID: userOrDefault(input.UserID),
		Symbol: symbol,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Remove GetOneItem: %v", err)
		return err
	}
	if existing.ID == "" {
		return watchlist.ErrItemNotFound
	}

	if err := uc.repo.DeleteItem(ctx, existing.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Remove DeleteItem: %v", err)
		return err
	}
	return nil
}
