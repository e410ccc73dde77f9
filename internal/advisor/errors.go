package advisor

import "errors"

var (
	ErrEmptyQuery            = errors.New("query is required")
	ErrInvalidTicker         = errors.New("invalid ticker")
	ErrTooFewTickers         = errors.New("at least 2 tickers required for comparison")
	ErrTooManyTickers        = errors.New("maximum 5 tickers allowed for comparison")
	ErrEmptyPortfolio        = errors.New("at least 1 ticker required for portfolio analysis")
	ErrInvalidDataType       = errors.New("invalid data_type")
	ErrInvalidRiskTolerance  = errors.New("risk_tolerance must be conservative, moderate or aggressive")
	ErrDataNotFound          = errors.New("financial data not found")
	ErrGenerationUnavailable = errors.New("AI service not available")
	ErrGenerationFailed      = errors.New("AI analysis failed")
)
