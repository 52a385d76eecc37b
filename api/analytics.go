package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// GetSummary returns the dashboard headline aggregate for a channel.
func (c *Client) GetSummary(ctx context.Context, channelID string) (*model.ChannelSummary, error) {
	var summary model.ChannelSummary
	if err := c.get(ctx, "/analytics/channel/"+url.PathEscape(channelID)+"/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetSentiment returns the sentiment breakdown, optionally date-bounded.
// Dates are ISO strings; empty values are omitted.
func (c *Client) GetSentiment(ctx context.Context, channelID, dateFrom, dateTo string) (*model.SentimentBreakdown, error) {
	params := url.Values{}
	if dateFrom != "" {
		params.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		params.Set("date_to", dateTo)
	}

	var breakdown model.SentimentBreakdown
	endpoint := withQuery("/analytics/channel/"+url.PathEscape(channelID)+"/sentiment", params)
	if err := c.get(ctx, endpoint, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

// GetTagCounts returns tag usage counts, optionally date-bounded.
func (c *Client) GetTagCounts(ctx context.Context, channelID, dateFrom, dateTo string) (map[string]int64, error) {
	params := url.Values{}
	if dateFrom != "" {
		params.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		params.Set("date_to", dateTo)
	}

	var counts map[string]int64
	endpoint := withQuery("/analytics/channel/"+url.PathEscape(channelID)+"/tags", params)
	if err := c.get(ctx, endpoint, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// GetTrends returns the daily sentiment series over the given day window.
func (c *Client) GetTrends(ctx context.Context, channelID string, days int) ([]model.SentimentTrend, error) {
	params := url.Values{}
	params.Set("days", strconv.Itoa(orDefault(days, 30)))

	var trends []model.SentimentTrend
	endpoint := withQuery("/analytics/channel/"+url.PathEscape(channelID)+"/trends", params)
	if err := c.get(ctx, endpoint, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}

// GetTopVideos returns the top videos by comment engagement.
func (c *Client) GetTopVideos(ctx context.Context, channelID string, limit int) ([]model.TopVideo, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(orDefault(limit, 10)))

	var videos []model.TopVideo
	endpoint := withQuery("/analytics/channel/"+url.PathEscape(channelID)+"/top-videos", params)
	if err := c.get(ctx, endpoint, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
