package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"financial-agent/internal/agent"
	"financial-agent/internal/agent/orchestrator"
	"financial-agent/internal/agent/session"
	"financial-agent/internal/marketdata"
	watchlistRepo "financial-agent/internal/watchlist/repository/sqlite"
	"financial-agent/pkg/log"
	"financial-agent/pkg/response"
)

type stubResolver struct{ store *session.Store }

func (r stubResolver) Resolve(_ context.Context, in orchestrator.Input) (orchestrator.Output, error) {
	return orchestrator.Output{ResponseText: "ok", SessionID: in.SessionID}, nil
}
func (r stubResolver) History(id string) []agent.Exchange { return r.store.History(id) }
func (r stubResolver) Clear(id string)                    { r.store.Clear(id) }

type stubMarket struct{ marketdata.Provider }

type stubGeneration bool

func (g stubGeneration) Available() bool { return bool(g) }

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	db, err := watchlistRepo.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := session.New(session.Config{})
	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		WatchlistDB: db,
		MarketData:  stubMarket{},
		Resolver:    stubResolver{store: store},
		Sessions:    store,
		Generation:  stubGeneration(true),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: unmarshal: %v", path, err)
		}
		data, _ := resp.Data.(map[string]interface{})
		if data["service"] != ServiceName {
			t.Errorf("%s: unexpected service %v", path, data["service"])
		}
	}

	w := get(srv, "/ready")
	if !strings.Contains(w.Body.String(), `"generation":true`) {
		t.Errorf("ready should report generation availability: %s", w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected request id header")
	}
}

func TestMetricsRoute(t *testing.T) {
	srv := newTestServer(t)

	w := get(srv, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("expected default Go collector output")
	}
}

func TestDomainRoutesRegistered(t *testing.T) {
	srv := newTestServer(t)

	w := get(srv, "/api/v1/watchlist")
	if w.Code != http.StatusOK {
		t.Fatalf("watchlist list: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = get(srv, "/api/v1/ai/conversation-history/s1")
	if w.Code != http.StatusOK {
		t.Fatalf("history: expected 200, got %d", w.Code)
	}
}

func TestValidate(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: "test"})
	if err == nil {
		t.Fatal("expected error for missing dependencies")
	}
}
