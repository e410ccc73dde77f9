package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"financial-agent/internal/marketdata"
)

const redisKeyPrefix = "finagent:md:"

// Store is a document cache. Misses and backend errors both read as a miss.
type Store interface {
	Get(ctx context.Context, key string) (marketdata.Document, bool)
	Set(ctx context.Context, key string, doc marketdata.Document)
}

// memoryStore keeps documents in a size-bounded LRU with per-entry expiry.
type memoryStore struct {
	lru *expirable.LRU[string, marketdata.Document]
}

// NewMemoryStore returns an in-process LRU store.
func NewMemoryStore(size int, ttl time.Duration) Store {
	if size <= 0 {
		size = DefaultSize
	}
	return &memoryStore{lru: expirable.NewLRU[string, marketdata.Document](size, nil, ttl)}
}

func (s *memoryStore) Get(_ context.Context, key string) (marketdata.Document, bool) {
	return s.lru.Get(key)
}

func (s *memoryStore) Set(_ context.Context, key string, doc marketdata.Document) {
	s.lru.Add(key, doc)
}

// redisStore shares documents between replicas.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a store backed by client. Documents round-trip as JSON.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Get(ctx context.Context, key string) (marketdata.Document, bool) {
	val, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	var doc marketdata.Document
	if err := json.Unmarshal(val, &doc); err != nil {
		return nil, false
	}
	return doc, true
}

func (s *redisStore) Set(ctx context.Context, key string, doc marketdata.Document) {
	val, err := json.Marshal(doc)
	if err != nil {
		return
	}
	_ = s.client.Set(ctx, redisKeyPrefix+key, val, s.ttl).Err()
}

// tieredStore reads through a fast local tier before a shared one and
// backfills the local tier on a shared hit.
type tieredStore struct {
	local  Store
	shared Store
}

// NewTieredStore layers local over shared.
func NewTieredStore(local, shared Store) Store {
	return &tieredStore{local: local, shared: shared}
}

func (s *tieredStore) Get(ctx context.Context, key string) (marketdata.Document, bool) {
	if doc, ok := s.local.Get(ctx, key); ok {
		return doc, true
	}
	doc, ok := s.shared.Get(ctx, key)
	if ok {
		s.local.Set(ctx, key, doc)
	}
	return doc, ok
}

func (s *tieredStore) Set(ctx context.Context, key string, doc marketdata.Document) {
	s.local.Set(ctx, key, doc)
	s.shared.Set(ctx, key, doc)
}
