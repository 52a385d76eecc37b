package cache

import (
	"context"
	"strconv"

	"github.com/PriyanshAroraa/CreatorPulse/api"
	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// Views is the per-resource cached read layer over the API client. The
// single-channel record rides the short window because a running sync
// mutates it; analytics and community aggregates change slowly and ride the
// long window. A missing channel id turns every lookup into a no-op.
type Views struct {
	api   *api.Client
	short *Fetcher
	long  *Fetcher
}

// NewViews wires the two fetcher windows around an API client.
func NewViews(client *api.Client) *Views {
	return &Views{
		api:   client,
		short: NewShortWindow(),
		long:  NewLongWindow(),
	}
}

// Channel returns the cached single-channel record.
func (v *Views) Channel(ctx context.Context, channelID string) (*model.Channel, error) {
	return Lookup(ctx, v.short, Key("channel", channelID), func(ctx context.Context) (*model.Channel, error) {
		return v.api.GetChannel(ctx, channelID)
	})
}

// Summary returns the cached dashboard aggregate.
func (v *Views) Summary(ctx context.Context, channelID string) (*model.ChannelSummary, error) {
	return Lookup(ctx, v.short, Key("channel-summary", channelID), func(ctx context.Context) (*model.ChannelSummary, error) {
		return v.api.GetSummary(ctx, channelID)
	})
}

// Sentiment returns the cached sentiment breakdown.
func (v *Views) Sentiment(ctx context.Context, channelID string) (*model.SentimentBreakdown, error) {
	return Lookup(ctx, v.long, Key("sentiment", channelID), func(ctx context.Context) (*model.SentimentBreakdown, error) {
		return v.api.GetSentiment(ctx, channelID, "", "")
	})
}

// Trends returns the cached sentiment trend series for one day window.
// Different windows are distinct cache entries.
func (v *Views) Trends(ctx context.Context, channelID string, days int) ([]model.SentimentTrend, error) {
	key := Key("trends", channelID, strconv.Itoa(days))
	return Lookup(ctx, v.long, key, func(ctx context.Context) ([]model.SentimentTrend, error) {
		return v.api.GetTrends(ctx, channelID, days)
	})
}

// TopVideos returns the cached top-video ranking.
func (v *Views) TopVideos(ctx context.Context, channelID string, limit int) ([]model.TopVideo, error) {
	key := Key("top-videos", channelID, strconv.Itoa(limit))
	return Lookup(ctx, v.long, key, func(ctx context.Context) ([]model.TopVideo, error) {
		return v.api.GetTopVideos(ctx, channelID, limit)
	})
}

// TagCounts returns the cached tag usage counts.
func (v *Views) TagCounts(ctx context.Context, channelID string) (map[string]int64, error) {
	return Lookup(ctx, v.long, Key("tags", channelID), func(ctx context.Context) (map[string]int64, error) {
		return v.api.GetTagCounts(ctx, channelID, "", "")
	})
}

// CommunityStats returns the cached commenter population summary.
func (v *Views) CommunityStats(ctx context.Context, channelID string) (*model.CommunityStats, error) {
	return Lookup(ctx, v.long, Key("community-stats", channelID), func(ctx context.Context) (*model.CommunityStats, error) {
		return v.api.GetCommunityStats(ctx, channelID)
	})
}

// TopCommenters returns the cached most-active-commenter ranking.
func (v *Views) TopCommenters(ctx context.Context, channelID string, limit int) ([]model.Commenter, error) {
	key := Key("top-commenters", channelID, strconv.Itoa(limit))
	return Lookup(ctx, v.long, key, func(ctx context.Context) ([]model.Commenter, error) {
		return v.api.GetTopCommenters(ctx, channelID, limit)
	})
}

// Streaks returns the cached streak ranking.
func (v *Views) Streaks(ctx context.Context, channelID string, limit int) ([]model.Commenter, error) {
	key := Key("streaks", channelID, strconv.Itoa(limit))
	return Lookup(ctx, v.long, key, func(ctx context.Context) ([]model.Commenter, error) {
		return v.api.GetStreaks(ctx, channelID, limit)
	})
}

// InvalidateChannel drops every cached view of one channel, used after a
// completed sync so dependent reads see updated counts.
func (v *Views) InvalidateChannel(channelID string) {
	v.short.Invalidate(Key("channel", channelID))
	v.short.Invalidate(Key("channel-summary", channelID))
	v.long.Purge()
}

// Prefetch warms the channel record, summary, and sentiment caches.
// Failures are deliberately ignored; this is an optimization only.
func (v *Views) Prefetch(ctx context.Context, channelID string) {
	_, _ = v.Channel(ctx, channelID)
	_, _ = v.Summary(ctx, channelID)
	_, _ = v.Sentiment(ctx, channelID)
}
