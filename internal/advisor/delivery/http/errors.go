package http

import (
	"context"
	"errors"
	"net/http"

	"financial-agent/internal/advisor"
	pkgErrors "financial-agent/pkg/errors"
)

// mapError translates advisor errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, advisor.ErrEmptyQuery),
		errors.Is(err, advisor.ErrInvalidTicker),
		errors.Is(err, advisor.ErrTooFewTickers),
		errors.Is(err, advisor.ErrTooManyTickers),
		errors.Is(err, advisor.ErrEmptyPortfolio),
		errors.Is(err, advisor.ErrInvalidRiskTolerance):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, advisor.ErrInvalidDataType):
		return pkgErrors.NewHTTPError(http.StatusBadRequest,
			"Invalid data_type. Use: comprehensive, historical, statements, news, events, recommendations")
	case errors.Is(err, advisor.ErrDataNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, advisor.ErrGenerationUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, advisor.ErrGenerationFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, advisor.ErrGenerationFailed.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "request timed out")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
