package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"financial-agent/internal/advisor/usecase"
	"financial-agent/internal/marketdata"
	"financial-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	serviceName string
	rateLimit   int
	tracing     bool

	// Shared infrastructure
	watchlistDB *sql.DB
	market      marketdata.Provider
	resolver    usecase.Resolver
	sessions    usecase.SessionLister
	generation  availability
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ServiceName     string
	RateLimitPerMin int
	TracingEnabled  bool

	// Watchlist storage (required)
	WatchlistDB *sql.DB

	// Agent
	MarketData marketdata.Provider
	Resolver   usecase.Resolver
	Sessions   usecase.SessionLister

	// Generation reports backend availability on /ready. Optional.
	Generation availability
}

type availability interface {
	Available() bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		serviceName: cfg.ServiceName,
		rateLimit:   cfg.RateLimitPerMin,
		tracing:     cfg.TracingEnabled,
		watchlistDB: cfg.WatchlistDB,
		market:      cfg.MarketData,
		resolver:    cfg.Resolver,
		sessions:    cfg.Sessions,
		generation:  cfg.Generation,
	}
	if srv.serviceName == "" {
		srv.serviceName = ServiceName
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.watchlistDB == nil {
		return errors.New("watchlist database is required")
	}
	if srv.market == nil {
		return errors.New("market data provider is required")
	}
	if srv.resolver == nil {
		return errors.New("resolver is required")
	}
	if srv.sessions == nil {
		return errors.New("session lister is required")
	}
	return nil
}

// Handler exposes the underlying router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
