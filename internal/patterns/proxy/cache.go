package proxy

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Fetcher looks a value up by key, typically over the network.
type Fetcher interface {
	Fetch(ctx context.Context, key string) (string, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, key string) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, key string) (string, error) {
	return f(ctx, key)
}

// CachingFetcher memoizes successful lookups of the wrapped Fetcher.
// Concurrent misses for one key share a single backend call. Errors are
// not cached.
type CachingFetcher struct {
	next   Fetcher
	flight singleflight.Group

	mu     sync.RWMutex
	values map[string]string
	hits   int
	misses int
}

func NewCachingFetcher(next Fetcher) *CachingFetcher {
	return &CachingFetcher{next: next, values: make(map[string]string)}
}

func (c *CachingFetcher) Fetch(ctx context.Context, key string) (string, error) {
	if v, ok := c.cached(key); ok {
		c.record(true)
		return v, nil
	}

	leader := false
	v, err, _ := c.flight.Do(key, func() (any, error) {
		if v, ok := c.cached(key); ok {
			return v, nil
		}
		leader = true
		v, err := c.next.Fetch(ctx, key)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.values[key] = v
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return "", err
	}
	c.record(!leader)
	return v.(string), nil
}

func (c *CachingFetcher) cached(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *CachingFetcher) record(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

// Stats returns cache hits and misses so far. A miss is a successful
// backend call; callers that shared it count as hits.
func (c *CachingFetcher) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
