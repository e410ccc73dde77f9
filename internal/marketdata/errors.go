package marketdata

import "errors"

var (
	ErrNoData          = errors.New("no data found")
	ErrInvalidTicker   = errors.New("invalid ticker")
	ErrInvalidArgument = errors.New("invalid argument")
)
