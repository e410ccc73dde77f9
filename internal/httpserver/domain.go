package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	advisorHTTP "financial-agent/internal/advisor/delivery/http"
	advisorUC "financial-agent/internal/advisor/usecase"
	"financial-agent/internal/middleware"
	"financial-agent/internal/watchlist"
	watchlistHTTP "financial-agent/internal/watchlist/delivery/http"
	watchlistRepo "financial-agent/internal/watchlist/repository/sqlite"
	watchlistUC "financial-agent/internal/watchlist/usecase"
)

// setupWatchlistDomain initializes the watchlist domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, ..., srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(rg.Group("/myresource"), h, mw)
func (srv HTTPServer) setupWatchlistDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (watchlist.UseCase, error) {
	// 1. Repository
	if err := watchlistRepo.Migrate(ctx, srv.watchlistDB); err != nil {
		return nil, err
	}
	repo := watchlistRepo.New(srv.watchlistDB, srv.l)

	// 2. UseCase
	uc := watchlistUC.New(repo, srv.market, srv.l)

	// 3. HTTP Handler
	h := watchlistHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/watchlist
	watchlistHTTP.RegisterRoutes(api.Group("/watchlist"), h, mw)

	srv.l.Infof(ctx, "Watchlist domain registered")
	return uc, nil
}

// setupAdvisorDomain initializes the advisor domain on top of the shared
// orchestrator and registers its routes.
func (srv HTTPServer) setupAdvisorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, wl watchlist.UseCase) error {
	// 1. UseCase
	uc := advisorUC.New(srv.l, srv.resolver, srv.sessions, srv.market, wl)

	// 2. HTTP Handler
	h := advisorHTTP.New(srv.l, uc)

	// 3. Routes: /api/v1/ai
	advisorHTTP.RegisterRoutes(api.Group("/ai"), h, mw)

	srv.l.Infof(ctx, "Advisor domain registered")
	return nil
}
