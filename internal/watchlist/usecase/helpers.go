package usecase

import (
	"context"

	"financial-agent/internal/marketdata"
	"financial-agent/internal/watchlist"
)

func (uc *implUseCase) quote(ctx context.Context, symbol string) (marketdata.Quote, error) {
	doc, err := uc.market.StockInfo(ctx, symbol)
	if err != nil {
		return marketdata.Quote{Symbol: symbol}, err
	}
	return marketdata.QuoteFromStockInfo(symbol, doc), nil
}

func normalize(symbol string) (string, error) {
	s, ok := marketdata.NormalizeTicker(symbol)
	if !ok {
		return "", watchlist.ErrInvalidSymbol
	}
	return s, nil
}

func userOrDefault(id int64) int64 {
	if id <= 0 {
		return watchlist.DefaultUserID
	}
	return id
}
