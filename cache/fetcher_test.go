package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

func TestGet_ConcurrentCallsCollapse(t *testing.T) {
	fetcher := NewShortWindow()

	var calls atomic.Int64
	gate := make(chan struct{})
	fn := func(_ context.Context) (interface{}, error) {
		calls.Add(1)
		<-gate
		return "value", nil
	}

	const workers = 16
	results := make([]interface{}, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := fetcher.Get(context.Background(), "summary-UC123", fn)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Let the goroutines queue up behind the flight before releasing it.
	require.Eventually(t, func() bool { return calls.Load() == 1 }, testWait, testTick)
	close(gate)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load(), "concurrent gets for one key must issue one fetch")
	for _, v := range results {
		assert.Equal(t, "value", v)
	}
}

func TestGet_EmptyKeyIsNoOp(t *testing.T) {
	fetcher := NewShortWindow()

	called := false
	v, err := fetcher.Get(context.Background(), "", func(_ context.Context) (interface{}, error) {
		called = true
		return "value", nil
	})

	require.NoError(t, err)
	assert.Nil(t, v)
	assert.False(t, called, "empty key must not issue a request")
}

func TestGet_DistinctKeysFetchSeparately(t *testing.T) {
	fetcher := NewLongWindow()

	var calls atomic.Int64
	fn := func(_ context.Context) (interface{}, error) {
		return calls.Add(1), nil
	}

	a, err := fetcher.Get(context.Background(), "trends-UC123-30", fn)
	require.NoError(t, err)
	b, err := fetcher.Get(context.Background(), "trends-UC123-90", fn)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.EqualValues(t, 2, calls.Load())
}

func TestGet_ServesCachedWithinWindow(t *testing.T) {
	fetcher := NewShortWindow()

	var calls atomic.Int64
	fn := func(_ context.Context) (interface{}, error) {
		calls.Add(1)
		return "value", nil
	}

	for i := 0; i < 5; i++ {
		v, err := fetcher.Get(context.Background(), "channel-UC123", fn)
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	}
	assert.EqualValues(t, 1, calls.Load())
}

func TestGet_WindowExpiryRefetches(t *testing.T) {
	fetcher := NewFetcher(20*time.Millisecond, 0)

	var calls atomic.Int64
	fn := func(_ context.Context) (interface{}, error) {
		return calls.Add(1), nil
	}

	_, err := fetcher.Get(context.Background(), "k", fn)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		v, err := fetcher.Get(context.Background(), "k", fn)
		return err == nil && v.(int64) == 2
	}, testWait, testTick, "entry must refetch after the window expires")
}

func TestGet_RetriesBoundedAndFailuresNotCached(t *testing.T) {
	fetcher := NewFetcher(time.Minute, 2)

	var calls atomic.Int64
	boom := errors.New("backend down")
	fn := func(_ context.Context) (interface{}, error) {
		calls.Add(1)
		return nil, boom
	}

	_, err := fetcher.Get(context.Background(), "k", fn)
	require.ErrorIs(t, err, boom)
	assert.EqualValues(t, 3, calls.Load(), "one attempt plus two retries")

	// The failure must not poison the cache: a later get tries again.
	v, err := fetcher.Get(context.Background(), "k", func(_ context.Context) (interface{}, error) {
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", v)
}

func TestGet_CancelledContextStopsRetries(t *testing.T) {
	fetcher := NewFetcher(time.Minute, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	boom := errors.New("backend down")
	_, err := fetcher.Get(ctx, "k", func(_ context.Context) (interface{}, error) {
		calls.Add(1)
		return nil, boom
	})

	require.ErrorIs(t, err, boom)
	assert.EqualValues(t, 1, calls.Load(), "a dead context must not burn retries")
}

func TestInvalidate_DropsOneKey(t *testing.T) {
	fetcher := NewShortWindow()

	var calls atomic.Int64
	fn := func(_ context.Context) (interface{}, error) {
		return calls.Add(1), nil
	}

	_, err := fetcher.Get(context.Background(), "channel-UC123", fn)
	require.NoError(t, err)
	_, err = fetcher.Get(context.Background(), "channel-UC456", fn)
	require.NoError(t, err)

	fetcher.Invalidate("channel-UC123")

	v, err := fetcher.Get(context.Background(), "channel-UC123", fn)
	require.NoError(t, err)
	assert.EqualValues(t, 3, v, "invalidated key refetches")

	v, err = fetcher.Get(context.Background(), "channel-UC456", fn)
	require.NoError(t, err)
	assert.EqualValues(t, 2, v, "other keys stay cached")
}

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		parts    []string
		want     string
	}{
		{"no parts", "channels", nil, "channels"},
		{"one part", "channel", []string{"UC123"}, "channel-UC123"},
		{"two parts", "trends", []string{"UC123", "30"}, "trends-UC123-30"},
		{"missing part", "trends", []string{"", "30"}, ""},
		{"missing later part", "trends", []string{"UC123", ""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.resource, tt.parts...))
		})
	}
}

func TestLookup_TypedAndZeroOnNoOp(t *testing.T) {
	fetcher := NewShortWindow()

	got, err := Lookup(context.Background(), fetcher, "k", func(_ context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	empty, err := Lookup(context.Background(), fetcher, "", func(_ context.Context) ([]string, error) {
		t.Fatal("must not fetch for an empty key")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Nil(t, empty)
}
