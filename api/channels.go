package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// ListChannels returns every channel connected by the signed-in user.
func (c *Client) ListChannels(ctx context.Context) ([]model.Channel, error) {
	var channels []model.Channel
	if err := c.get(ctx, "/channels", &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

// GetChannel returns a single channel record.
func (c *Client) GetChannel(ctx context.Context, channelID string) (*model.Channel, error) {
	var channel model.Channel
	if err := c.get(ctx, "/channels/"+url.PathEscape(channelID), &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

// AddChannel connects a channel by URL or ID and returns the created record.
func (c *Client) AddChannel(ctx context.Context, channelURL string) (*model.Channel, error) {
	body := map[string]string{"channel_url": channelURL}
	var channel model.Channel
	if err := c.do(ctx, http.MethodPost, "/channels", body, &channel); err != nil {
		return nil, err
	}
	return &channel, nil
}

// DeleteChannel removes a connected channel and its analyzed data.
func (c *Client) DeleteChannel(ctx context.Context, channelID string) error {
	return c.do(ctx, http.MethodDelete, "/channels/"+url.PathEscape(channelID), nil, nil)
}

// SyncChannel starts the asynchronous backend ingestion job for a channel.
// Progress arrives via the sync log stream, not this call.
func (c *Client) SyncChannel(ctx context.Context, channelID string, daysBack, maxVideos int) error {
	if daysBack <= 0 {
		daysBack = 30
	}
	if maxVideos <= 0 {
		maxVideos = 50
	}
	endpoint := fmt.Sprintf("/channels/%s/sync?days_back=%d&max_videos=%d",
		url.PathEscape(channelID), daysBack, maxVideos)
	return c.do(ctx, http.MethodPost, endpoint, nil, nil)
}

// GetSyncStatus is the polled fallback for sync progress.
func (c *Client) GetSyncStatus(ctx context.Context, channelID string) (*model.ChannelSyncStatus, error) {
	var status model.ChannelSyncStatus
	if err := c.get(ctx, "/channels/"+url.PathEscape(channelID)+"/sync-status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetSyncLogs returns the durable sync log history for a channel.
func (c *Client) GetSyncLogs(ctx context.Context, channelID string) ([]model.SyncLogEntry, error) {
	var entries []model.SyncLogEntry
	if err := c.get(ctx, "/channels/"+url.PathEscape(channelID)+"/logs", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SyncLogStreamURL is the SSE endpoint streaming live sync log events.
func (c *Client) SyncLogStreamURL(channelID string) string {
	return c.baseURL + "/channels/" + url.PathEscape(channelID) + "/logs/stream"
}

// ListChannelVideos returns analyzed videos for a channel, newest first.
func (c *Client) ListChannelVideos(ctx context.Context, channelID string, limit, skip int) ([]model.Video, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(orDefault(limit, 50)))
	params.Set("skip", strconv.Itoa(skip))

	var videos []model.Video
	endpoint := withQuery("/videos/channel/"+url.PathEscape(channelID), params)
	if err := c.get(ctx, endpoint, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetVideo returns one analyzed video.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	var video model.Video
	if err := c.get(ctx, "/videos/"+url.PathEscape(videoID), &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// GetVideoComments returns analyzed comments for one video, optionally
// filtered by sentiment.
func (c *Client) GetVideoComments(ctx context.Context, videoID string, sentiment model.Sentiment, limit, skip int) (*model.VideoComments, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(orDefault(limit, 50)))
	params.Set("skip", strconv.Itoa(skip))
	if sentiment != "" {
		params.Set("sentiment", string(sentiment))
	}

	var comments model.VideoComments
	endpoint := withQuery("/videos/"+url.PathEscape(videoID)+"/comments", params)
	if err := c.get(ctx, endpoint, &comments); err != nil {
		return nil, err
	}
	return &comments, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
