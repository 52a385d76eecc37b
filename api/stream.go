package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// streamConnectTimeout bounds stream establishment. The stream itself has no
// overall deadline; a sync job may run for many minutes.
const streamConnectTimeout = 15 * time.Second

// OpenSyncLogStream opens the one-way server-push log stream for a channel
// and returns its body for event parsing. The caller owns the reader and
// must close it on every exit path.
func (c *Client) OpenSyncLogStream(ctx context.Context, channelID string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SyncLogStreamURL(channelID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream request: %w", err)
	}

	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			log.Warn().Err(err).Str("channel_id", channelID).Msg("Failed to get session token for log stream, proceeding unauthenticated")
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	// The regular client's request timeout would sever a long-lived stream,
	// so streaming gets its own client: same cookie jar, header-bounded
	// connect, unbounded read.
	streamClient := &http.Client{
		Jar: c.httpc.Jar,
		Transport: &http.Transport{
			ResponseHeaderTimeout: streamConnectTimeout,
		},
	}

	resp, err := streamClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to open log stream: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{Status: resp.StatusCode}
		var payload struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Detail = payload.Detail
		}
		resp.Body.Close()
		return nil, apiErr
	}

	return resp.Body, nil
}
