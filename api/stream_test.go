package api

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSyncLogStream_DeliversEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/channels/UC123/logs/stream", r.URL.Path)
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"message\": \"Sync started\", \"level\": \"info\"}\n\n")
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	body, err := client.OpenSyncLogStream(context.Background(), "UC123")
	require.NoError(t, err)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	require.True(t, scanner.Scan())
	assert.Equal(t, `data: {"message": "Sync started", "level": "info"}`, scanner.Text())
}

func TestOpenSyncLogStream_AttachesBearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "text/event-stream")
	}))
	defer srv.Close()

	client, err := New(srv.URL, WithTokenSource(StaticToken("sess-abc")))
	require.NoError(t, err)

	body, err := client.OpenSyncLogStream(context.Background(), "UC123")
	require.NoError(t, err)
	body.Close()

	assert.Equal(t, "Bearer sess-abc", auth)
}

func TestOpenSyncLogStream_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"detail": "Channel not found"}`)
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	require.NoError(t, err)

	_, err = client.OpenSyncLogStream(context.Background(), "UCmissing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Channel not found", err.Error())
}

func TestOpenSyncLogStream_CancelUnblocksRead(t *testing.T) {
	events := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.(http.Flusher).Flush()
		<-events // hold the stream open until the test ends
	}))
	defer srv.Close()
	defer close(events)

	client, err := New(srv.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	body, err := client.OpenSyncLogStream(ctx, "UC123")
	require.NoError(t, err)
	defer body.Close()

	cancel()
	buf := make([]byte, 64)
	_, err = body.Read(buf)
	assert.Error(t, err, "a cancelled context must unblock the stream read")
}
