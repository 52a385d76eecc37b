package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// SendChat asks the AI assistant a question about a channel's comments.
func (c *Client) SendChat(ctx context.Context, channelID, message string) (*model.ChatReply, error) {
	body := map[string]string{"message": message}
	var reply model.ChatReply
	if err := c.do(ctx, http.MethodPost, "/chat/channel/"+url.PathEscape(channelID), body, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetChatHistory returns recent assistant exchanges for a channel.
func (c *Client) GetChatHistory(ctx context.Context, channelID string, limit int) ([]model.ChatMessage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(orDefault(limit, 20)))

	var history []model.ChatMessage
	endpoint := withQuery("/chat/channel/"+url.PathEscape(channelID)+"/history", params)
	if err := c.get(ctx, endpoint, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// ClearChatHistory deletes the assistant conversation for a channel.
func (c *Client) ClearChatHistory(ctx context.Context, channelID string) error {
	return c.do(ctx, http.MethodDelete, "/chat/channel/"+url.PathEscape(channelID)+"/history", nil, nil)
}

// GetSubscriptionStatus returns the signed-in user's plan and limits.
func (c *Client) GetSubscriptionStatus(ctx context.Context) (*model.SubscriptionStatus, error) {
	var status model.SubscriptionStatus
	if err := c.get(ctx, "/webhooks/subscription/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// CreateCheckout starts a billing upgrade and returns the checkout URL.
func (c *Client) CreateCheckout(ctx context.Context) (string, error) {
	var result struct {
		CheckoutURL string `json:"checkout_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/webhooks/checkout/create", nil, &result); err != nil {
		return "", err
	}
	return result.CheckoutURL, nil
}
