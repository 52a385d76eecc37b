package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Dedupe windows. The short window covers records that change under an
// active sync (the single-channel view); the long window covers slow-moving
// analytics aggregates.
const (
	ShortWindow = time.Minute
	LongWindow  = 5 * time.Minute

	// DefaultRetries bounds re-attempts after a failed fetch.
	DefaultRetries = 2

	// fetcherSize caps cached entries per fetcher. Entry payloads are small
	// JSON aggregates, so this stays well under a megabyte.
	fetcherSize = 1024
)

// FetchFunc loads the value for one cache key from the backend.
type FetchFunc func(ctx context.Context) (interface{}, error)

// Fetcher is a keyed read-through cache. Concurrent requests for the same
// key collapse into a single upstream call, and successful values are served
// from cache until the dedupe window expires. Failed fetches are retried up
// to the configured bound and never cached.
type Fetcher struct {
	retries int
	group   singleflight.Group
	entries *expirable.LRU[string, interface{}]
}

// NewFetcher creates a fetcher whose entries expire after window.
func NewFetcher(window time.Duration, retries int) *Fetcher {
	return &Fetcher{
		retries: retries,
		entries: expirable.NewLRU[string, interface{}](fetcherSize, nil, window),
	}
}

// NewShortWindow returns the fetcher configuration for sync-mutable records.
func NewShortWindow() *Fetcher {
	return NewFetcher(ShortWindow, DefaultRetries)
}

// NewLongWindow returns the fetcher configuration for analytics aggregates.
func NewLongWindow() *Fetcher {
	return NewFetcher(LongWindow, DefaultRetries)
}

// Get returns the cached value for key, or loads it through fn. An empty key
// means a required parameter is absent: no request is issued and a nil value
// is returned without error.
func (f *Fetcher) Get(ctx context.Context, key string, fn FetchFunc) (interface{}, error) {
	if key == "" {
		return nil, nil
	}

	if v, ok := f.entries.Get(key); ok {
		return v, nil
	}

	v, err, _ := f.group.Do(key, func() (interface{}, error) {
		// A caller that queued behind the flight may find the value cached.
		if v, ok := f.entries.Get(key); ok {
			return v, nil
		}

		var lastErr error
		for attempt := 0; attempt <= f.retries; attempt++ {
			v, err := fn(ctx)
			if err == nil {
				f.entries.Add(key, v)
				return v, nil
			}
			lastErr = err
			if ctx.Err() != nil {
				break
			}
		}
		return nil, lastErr
	})
	return v, err
}

// Invalidate drops one key so the next Get refetches.
func (f *Fetcher) Invalidate(key string) {
	f.entries.Remove(key)
}

// Purge drops every cached entry.
func (f *Fetcher) Purge() {
	f.entries.Purge()
}

// Key builds a deterministic cache key from a resource name and its
// identifying parameters. Distinct parameter combinations never collide.
// An empty part marks a missing required parameter and yields the empty
// (do-not-fetch) key.
func Key(resource string, parts ...string) string {
	for _, p := range parts {
		if p == "" {
			return ""
		}
	}
	if len(parts) == 0 {
		return resource
	}
	return resource + "-" + strings.Join(parts, "-")
}

// Lookup is the typed wrapper over Fetcher.Get. A no-op key returns the zero
// value of T with a nil error.
func Lookup[T any](ctx context.Context, f *Fetcher, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := f.Get(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil || v == nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
