package usecase

import (
	"time"

	"github.com/google/uuid"

	"financial-agent/internal/marketdata"
	"financial-agent/internal/watchlist"
	"financial-agent/internal/watchlist/repository"
	"financial-agent/pkg/log"
)

// quoteConcurrency caps parallel quote lookups while listing.
const quoteConcurrency = 5

// implUseCase is the private implementation of watchlist.UseCase.
type implUseCase struct {
	repo   repository.Repository
	market marketdata.Provider
	l      log.Logger
	now    func() time.Time
	newID  func() string
}

var _ watchlist.UseCase = (*implUseCase)(nil)

// New creates a new watchlist UseCase implementation.
func New(repo repository.Repository, market marketdata.Provider, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		market: market,
		l:      l,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}
