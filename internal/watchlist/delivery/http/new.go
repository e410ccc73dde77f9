package http

import (
	"financial-agent/internal/watchlist"
	"financial-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc watchlist.UseCase
}

// New creates a new HTTP handler for the watchlist domain.
func New(l log.Logger, uc watchlist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
