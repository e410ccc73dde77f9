package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financial-agent/internal/marketdata"
	"financial-agent/internal/watchlist"
	repo "financial-agent/internal/watchlist/repository"
	"financial-agent/pkg/log"
)

type fakeRepo struct {
	mu      sync.Mutex
	items   []watchlist.Item
	failGet bool
}

func (r *fakeRepo) CreateItem(_ context.Context, opt repo.CreateItemOptions) (watchlist.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := watchlist.Item{ID: opt.ID, UserID: opt.UserID, Symbol: opt.Symbol, Notes: opt.Notes, AddedAt: opt.AddedAt}
	r.items = append(r.items, item)
	return item, nil
}

func (r *fakeRepo) GetOneItem(_ context.Context, opt repo.GetOneItemOptions) (watchlist.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failGet {
		return watchlist.Item{}, repo.ErrFailedToGet
	}
	for _, it := range r.items {
		if (opt.ID == "" || it.ID == opt.ID) && (opt.UserID == 0 || it.UserID == opt.UserID) && (opt.Symbol == "" || it.Symbol == opt.Symbol) {
			return it, nil
		}
	}
	return watchlist.Item{}, nil
}

func (r *fakeRepo) ListItems(_ context.Context, opt repo.ListItemsOptions) ([]watchlist.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []watchlist.Item
	for _, it := range r.items {
		if it.UserID == opt.UserID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteItem(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items {
		if it.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeMarket serves StockInfo from a price table; unknown symbols fail.
type fakeMarket struct {
	marketdata.Provider
	prices map[string]float64
}

func (m *fakeMarket) StockInfo(_ context.Context, ticker string) (marketdata.Document, error) {
	p, ok := m.prices[ticker]
	if !ok {
		return nil, marketdata.ErrNoData
	}
	return marketdata.Document{
		marketdata.SectionPriceData: map[string]any{
			"currentPrice":  p,
			"previousClose": p - 1,
			"volume":        1000.0,
		},
	}, nil
}

func newTestUseCase(prices map[string]float64) (*implUseCase, *fakeRepo) {
	r := &fakeRepo{}
	uc := New(r, &fakeMarket{prices: prices}, log.NewNop())
	uc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	n := 0
	uc.newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	return uc, r
}

func TestAdd(t *testing.T) {
	uc, r := newTestUseCase(map[string]float64{"AAPL": 190})

	out, err := uc.Add(context.Background(), watchlist.AddInput{Symbol: " aapl ", Notes: " long term "})
	require.NoError(t, err)

	assert.Equal(t, "AAPL", out.Item.Item.Symbol)
	assert.Equal(t, watchlist.DefaultUserID, out.Item.Item.UserID)
	assert.Equal(t, "long term", out.Item.Item.Notes)
	assert.Equal(t, 190.0, out.Item.Quote.Price)
	assert.InDelta(t, 1.0, out.Item.Quote.Change, 1e-9)
	require.Len(t, r.items, 1)
}

func TestAdd_Duplicate(t *testing.T) {
	uc, _ := newTestUseCase(map[string]float64{"AAPL": 190})
	ctx := context.Background()

	_, err := uc.Add(ctx, watchlist.AddInput{UserID: 2, Symbol: "AAPL"})
	require.NoError(t, err)

	_, err = uc.Add(ctx, watchlist.AddInput{UserID: 2, Symbol: "aapl"})
	assert.ErrorIs(t, err, watchlist.ErrDuplicateSymbol)
}

func TestAdd_UnknownSymbol(t *testing.T) {
	uc, r := newTestUseCase(map[string]float64{"ZERO": 0})

	_, err := uc.Add(context.Background(), watchlist.AddInput{Symbol: "NOPE"})
	assert.ErrorIs(t, err, watchlist.ErrSymbolNotFound)

	_, err = uc.Add(context.Background(), watchlist.AddInput{Symbol: "ZERO"})
	assert.ErrorIs(t, err, watchlist.ErrSymbolNotFound, "no price means not tradable")

	assert.Empty(t, r.items)
}

func TestAdd_InvalidSymbol(t *testing.T) {
	uc, _ := newTestUseCase(nil)

	_, err := uc.Add(context.Background(), watchlist.AddInput{Symbol: "not a ticker"})
	assert.ErrorIs(t, err, watchlist.ErrInvalidSymbol)
}

func TestAdd_RepositoryFailure(t *testing.T) {
	uc, r := newTestUseCase(map[string]float64{"AAPL": 1})
	r.failGet = true

	_, err := uc.Add(context.Background(), watchlist.AddInput{Symbol: "AAPL"})
	assert.True(t, errors.Is(err, repo.ErrFailedToGet))
}

func TestList_ZeroQuoteOnFailure(t *testing.T) {
	uc, r := newTestUseCase(map[string]float64{"AAPL": 190})
	r.items = []watchlist.Item{
		{ID: "1", UserID: 1, Symbol: "AAPL"},
		{ID: "2", UserID: 1, Symbol: "GONE"},
		{ID: "3", UserID: 9, Symbol: "MSFT"},
	}

	out, err := uc.List(context.Background(), watchlist.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	assert.Equal(t, "AAPL", out.Items[0].Item.Symbol)
	assert.Equal(t, 190.0, out.Items[0].Quote.Price)
	assert.Equal(t, "GONE", out.Items[1].Item.Symbol)
	assert.Zero(t, out.Items[1].Quote.Price)
	assert.Equal(t, "GONE", out.Items[1].Quote.Symbol)
}

func TestSymbols(t *testing.T) {
	uc, r := newTestUseCase(nil)
	r.items = []watchlist.Item{
		{ID: "1", UserID: 4, Symbol: "TSLA"},
		{ID: "2", UserID: 4, Symbol: "NVDA"},
	}

	got, err := uc.Symbols(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"TSLA", "NVDA"}, got)

	got, err = uc.Symbols(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRemove(t *testing.T) {
	uc, r := newTestUseCase(nil)
	r.items = []watchlist.Item{{ID: "1", UserID: 1, Symbol: "AAPL"}}

	require.NoError(t, uc.Remove(context.Background(), watchlist.RemoveInput{Symbol: "aapl"}))
	assert.Empty(t, r.items)

	err := uc.Remove(context.Background(), watchlist.RemoveInput{Symbol: "AAPL"})
	assert.ErrorIs(t, err, watchlist.ErrItemNotFound)
}
