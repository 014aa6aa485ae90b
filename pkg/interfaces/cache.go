package interfaces

import "context"

// CollectionCache memoises loaded content collections by key. Keys are
// content type names; an empty cache behaves like a pass-through.
type CollectionCache[T any] interface {
	GetOrLoad(ctx context.Context, key string, load func(context.Context) (T, error)) (T, error)
	Invalidate(key string)
	Clear()
}

// CacheInvalidator is the narrow view used by change watchers.
type CacheInvalidator interface {
	Invalidate(key string)
}
