package watchlist

import "errors"

var (
	ErrItemNotFound    = errors.New("stock not found in watchlist")
	ErrDuplicateSymbol = errors.New("stock already in watchlist")
	ErrSymbolNotFound  = errors.New("stock symbol not found or invalid")
	ErrInvalidSymbol   = errors.New("invalid stock symbol")
)
