package loader

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// CachedLoader memoizes successful fetches from an underlying loader
// and collapses concurrent fetches for the same path into one call.
// Errors are not cached, so transient failures retry on next use.
type CachedLoader struct {
	inner Loader
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string][]byte
}

// Cached wraps a loader with in-memory memoization.
func Cached(inner Loader) *CachedLoader {
	return &CachedLoader{
		inner: inner,
		cache: make(map[string][]byte),
	}
}

// Fetch returns the cached bytes for path, fetching once on miss.
func (l *CachedLoader) Fetch(ctx context.Context, path string) ([]byte, error) {
	l.mu.RLock()
	data, ok := l.cache[path]
	l.mu.RUnlock()
	if ok {
		return data, nil
	}

	v, err, _ := l.group.Do(path, func() (any, error) {
		data, err := l.inner.Fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[path] = data
		l.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate drops the cached entry for path, if any.
func (l *CachedLoader) Invalidate(path string) {
	l.mu.Lock()
	delete(l.cache, path)
	l.mu.Unlock()
}

// Reset drops all cached entries.
func (l *CachedLoader) Reset() {
	l.mu.Lock()
	l.cache = make(map[string][]byte)
	l.mu.Unlock()
}
