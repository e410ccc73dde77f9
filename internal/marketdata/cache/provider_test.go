package cache_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"financial-agent/internal/marketdata"
	"financial-agent/internal/marketdata/cache"
)

type countingProvider struct {
	calls atomic.Int32
	err   error
}

func (c *countingProvider) doc(kind string) (marketdata.Document, error) {
	c.calls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return marketdata.Document{"kind": kind}, nil
}

func (c *countingProvider) StockInfo(context.Context, string) (marketdata.Document, error) {
	return c.doc("info")
}
func (c *countingProvider) HistoricalPrices(context.Context, string, string, string) (marketdata.Document, error) {
	return c.doc("hist")
}
func (c *countingProvider) FinancialStatements(context.Context, string, string, bool) (marketdata.Document, error) {
	return c.doc("stmt")
}
func (c *countingProvider) News(context.Context, string, int) (marketdata.Document, error) {
	return c.doc("news")
}
func (c *countingProvider) UpcomingEvents(context.Context, string) (marketdata.Document, error) {
	return c.doc("events")
}
func (c *countingProvider) Recommendations(context.Context, string) (marketdata.Document, error) {
	return c.doc("recs")
}
func (c *countingProvider) Compare(context.Context, []string, []string) (marketdata.Document, error) {
	return c.doc("compare")
}

func TestWrap_HitsAvoidUpstream(t *testing.T) {
	up := &countingProvider{}
	p := cache.Wrap(up, cache.NewMemoryStore(16, time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		doc, err := p.StockInfo(ctx, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, "info", doc["kind"])
	}
	assert.EqualValues(t, 1, up.calls.Load())

	_, _ = p.News(ctx, "AAPL", 10)
	_, _ = p.News(ctx, "AAPL", 5)
	assert.EqualValues(t, 3, up.calls.Load(), "limit is part of the key")

	_, _ = p.Compare(ctx, []string{"MSFT", "AAPL"}, nil)
	_, _ = p.Compare(ctx, []string{"AAPL", "MSFT"}, nil)
	assert.EqualValues(t, 4, up.calls.Load(), "ticker order is not part of the key")
}

func TestWrap_ErrorsAreNotCached(t *testing.T) {
	up := &countingProvider{err: errors.New("boom")}
	p := cache.Wrap(up, cache.NewMemoryStore(16, time.Minute))
	ctx := context.Background()

	_, err := p.Recommendations(ctx, "AAPL")
	require.Error(t, err)
	_, err = p.Recommendations(ctx, "AAPL")
	require.Error(t, err)
	assert.EqualValues(t, 2, up.calls.Load())
}

func TestMemoryStore_Expires(t *testing.T) {
	s := cache.NewMemoryStore(4, 20*time.Millisecond)
	ctx := context.Background()

	s.Set(ctx, "k", marketdata.Document{"a": 1})
	_, ok := s.Get(ctx, "k")
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := s.Get(ctx, "k")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestTieredStore_DegradesWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	up := &countingProvider{}
	store := cache.NewTieredStore(cache.NewMemoryStore(16, time.Minute), cache.NewRedisStore(client, time.Minute))
	p := cache.Wrap(up, store)
	ctx := context.Background()

	_, err := p.UpcomingEvents(ctx, "AAPL")
	require.NoError(t, err)
	_, err = p.UpcomingEvents(ctx, "AAPL")
	require.NoError(t, err)
	assert.EqualValues(t, 1, up.calls.Load(), "local tier still serves")
}
