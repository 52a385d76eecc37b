package cache

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanshAroraa/CreatorPulse/api"
)

// newViewsServer serves the endpoints the views layer reads, counting hits
// per path.
func newViewsServer(t *testing.T) (*Views, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/channels/UC123":
			fmt.Fprint(w, `{"channel_id": "UC123", "name": "Test Channel"}`)
		case "/api/analytics/channel/UC123/summary":
			fmt.Fprint(w, `{"channel_id": "UC123", "total_comments": 42}`)
		case "/api/analytics/channel/UC123/sentiment":
			fmt.Fprint(w, `{"breakdown": {"positive": 5, "neutral": 3, "negative": 1}, "total": 9}`)
		case "/api/analytics/channel/UC123/trends":
			fmt.Fprint(w, `[{"date": "2026-08-12", "positive": 5, "neutral": 3, "negative": 1}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"detail": "not found"}`)
		}
	}))
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL)
	require.NoError(t, err)
	return NewViews(client), &hits
}

func TestViews_ChannelIsCached(t *testing.T) {
	views, hits := newViewsServer(t)

	first, err := views.Channel(context.Background(), "UC123")
	require.NoError(t, err)
	second, err := views.Channel(context.Background(), "UC123")
	require.NoError(t, err)

	assert.Equal(t, "Test Channel", first.Name)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, hits.Load(), "repeat reads inside the window hit cache")
}

func TestViews_EmptyChannelIDIsNoOp(t *testing.T) {
	views, hits := newViewsServer(t)

	channel, err := views.Channel(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, channel)

	summary, err := views.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, summary)

	assert.EqualValues(t, 0, hits.Load(), "missing channel id must not issue requests")
}

func TestViews_TrendWindowsAreDistinctEntries(t *testing.T) {
	views, hits := newViewsServer(t)

	_, err := views.Trends(context.Background(), "UC123", 30)
	require.NoError(t, err)
	_, err = views.Trends(context.Background(), "UC123", 90)
	require.NoError(t, err)
	_, err = views.Trends(context.Background(), "UC123", 30)
	require.NoError(t, err)

	assert.EqualValues(t, 2, hits.Load(), "one fetch per day window")
}

func TestViews_InvalidateChannelForcesRefetch(t *testing.T) {
	views, hits := newViewsServer(t)

	_, err := views.Channel(context.Background(), "UC123")
	require.NoError(t, err)
	_, err = views.Trends(context.Background(), "UC123", 30)
	require.NoError(t, err)
	require.EqualValues(t, 2, hits.Load())

	views.InvalidateChannel("UC123")

	_, err = views.Channel(context.Background(), "UC123")
	require.NoError(t, err)
	_, err = views.Trends(context.Background(), "UC123", 30)
	require.NoError(t, err)
	assert.EqualValues(t, 4, hits.Load(), "invalidation drops both windows")
}

func TestViews_PrefetchWarmsCaches(t *testing.T) {
	views, hits := newViewsServer(t)

	views.Prefetch(context.Background(), "UC123")
	require.EqualValues(t, 3, hits.Load(), "prefetch loads channel, summary, and sentiment")

	_, err := views.Channel(context.Background(), "UC123")
	require.NoError(t, err)
	_, err = views.Summary(context.Background(), "UC123")
	require.NoError(t, err)
	_, err = views.Sentiment(context.Background(), "UC123")
	require.NoError(t, err)

	assert.EqualValues(t, 3, hits.Load(), "reads after prefetch are served from cache")
}

func TestViews_ErrorsAreNotCached(t *testing.T) {
	views, hits := newViewsServer(t)

	_, err := views.Channel(context.Background(), "UC404")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	before := hits.Load()

	_, err = views.Channel(context.Background(), "UC404")
	require.Error(t, err)
	assert.Greater(t, hits.Load(), before, "a failed lookup must retry on the next read")
}
