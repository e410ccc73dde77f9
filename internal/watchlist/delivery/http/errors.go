package http

import (
	"errors"
	"net/http"

	"financial-agent/internal/watchlist"
	pkgErrors "financial-agent/pkg/errors"
)

// mapError translates watchlist errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, watchlist.ErrDuplicateSymbol):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Stock already in watchlist")
	case errors.Is(err, watchlist.ErrSymbolNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Stock symbol not found or invalid")
	case errors.Is(err, watchlist.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Stock not found in watchlist")
	case errors.Is(err, watchlist.ErrInvalidSymbol):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid stock symbol")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
