package client

import "context"

// Optimistic is one speculative cache write. Commit keeps it, Rollback puts
// back exactly what was cached before Apply.
type Optimistic[T any] struct {
	cache       *Cache
	key         Key
	previous    T
	hadPrevious bool
}

// Apply cancels in-flight reads of key, snapshots the cached value and
// replaces it with update(previous). previous is the zero value when nothing
// is cached. update must not modify its argument.
func Apply[T any](cache *Cache, key Key, update func(previous T) T) *Optimistic[T] {
	cache.Cancel(key)
	prev, ok := cached[T](cache, key)
	cache.Set(key, update(prev))
	return &Optimistic[T]{
		cache:       cache,
		key:         key,
		previous:    prev,
		hadPrevious: ok,
	}
}

func (o *Optimistic[T]) Commit() {
	var zero T
	o.previous = zero
	o.hadPrevious = false
}

func (o *Optimistic[T]) Rollback() {
	if o.hadPrevious {
		o.cache.Set(o.key, o.previous)
		return
	}
	o.cache.Delete(o.key)
}

// RunOptimistic applies update, runs request, rolls back if it fails and in
// every case invalidates key so the next read refetches server state.
func RunOptimistic[T, R any](ctx context.Context, cache *Cache, key Key, update func(T) T, request func(context.Context) (R, error)) (R, error) {
	o := Apply(cache, key, update)
	res, err := request(ctx)
	if err != nil {
		o.Rollback()
	} else {
		o.Commit()
	}
	cache.InvalidatePrefix(key...)
	return res, err
}
