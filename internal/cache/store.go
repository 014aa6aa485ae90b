package cache

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/viccon/sturdyc"
)

const (
	defaultCapacity           = 64
	defaultTTL                = 5 * time.Minute
	defaultShards             = 8
	defaultEvictionPercentage = 10
)

// Config tunes the collection cache.
type Config struct {
	TTL      time.Duration
	Capacity int
}

// Store is a read-through cache of loaded collections keyed by content type.
// Concurrent loads of the same key are deduplicated.
type Store[T any] struct {
	client *sturdyc.Client[T]
	logger interfaces.Logger

	mu   sync.Mutex
	keys map[string]struct{}
}

var _ interfaces.CollectionCache[int] = (*Store[int])(nil)

// New constructs a Store. Zero config values fall back to defaults.
func New[T any](cfg Config, logger interfaces.Logger) *Store[T] {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = defaultCapacity
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	shards := min(defaultShards, cfg.Capacity)
	return &Store[T]{
		client: sturdyc.New[T](cfg.Capacity, shards, cfg.TTL, defaultEvictionPercentage),
		logger: logger,
		keys:   map[string]struct{}{},
	}
}

// GetOrLoad returns the cached value for key or calls load and caches its
// result. Errors are not cached.
func (s *Store[T]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (T, error)) (T, error) {
	s.track(key)
	return s.client.GetOrFetch(ctx, key, func(ctx context.Context) (T, error) {
		s.logger.Debug("cache.miss", "key", key)
		return load(ctx)
	})
}

// Invalidate drops key so the next read reloads it.
func (s *Store[T]) Invalidate(key string) {
	s.mu.Lock()
	delete(s.keys, key)
	s.mu.Unlock()
	s.client.Delete(key)
	s.logger.Debug("cache.invalidated", "key", key)
}

// Clear drops every key.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.keys))
	for key := range s.keys {
		keys = append(keys, key)
	}
	s.keys = map[string]struct{}{}
	s.mu.Unlock()

	for _, key := range keys {
		s.client.Delete(key)
	}
	s.logger.Debug("cache.cleared", "keys", len(keys))
}

// Size reports the number of cached entries.
func (s *Store[T]) Size() int {
	return s.client.Size()
}

func (s *Store[T]) track(key string) {
	s.mu.Lock()
	s.keys[key] = struct{}{}
	s.mu.Unlock()
}
