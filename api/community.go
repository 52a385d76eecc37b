package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// GetCommunityStats returns the commenter population summary for a channel.
func (c *Client) GetCommunityStats(ctx context.Context, channelID string) (*model.CommunityStats, error) {
	var stats model.CommunityStats
	if err := c.get(ctx, "/community/channel/"+url.PathEscape(channelID)+"/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetTopCommenters returns the most active commenters on a channel.
func (c *Client) GetTopCommenters(ctx context.Context, channelID string, limit int) ([]model.Commenter, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(orDefault(limit, 20)))

	var commenters []model.Commenter
	endpoint := withQuery("/community/channel/"+url.PathEscape(channelID)+"/top-commenters", params)
	if err := c.get(ctx, endpoint, &commenters); err != nil {
		return nil, err
	}
	return commenters, nil
}

// GetStreaks returns commenters ranked by consecutive-day activity.
func (c *Client) GetStreaks(ctx context.Context, channelID string, limit int) ([]model.Commenter, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(orDefault(limit, 20)))

	var commenters []model.Commenter
	endpoint := withQuery("/community/channel/"+url.PathEscape(channelID)+"/streaks", params)
	if err := c.get(ctx, endpoint, &commenters); err != nil {
		return nil, err
	}
	return commenters, nil
}

// GetCommenterProfile returns one commenter's aggregate and recent comments.
func (c *Client) GetCommenterProfile(ctx context.Context, authorChannelID, channelID string) (*model.CommenterProfile, error) {
	params := url.Values{}
	params.Set("channel_id", channelID)

	var profile model.CommenterProfile
	endpoint := withQuery("/community/commenter/"+url.PathEscape(authorChannelID), params)
	if err := c.get(ctx, endpoint, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
