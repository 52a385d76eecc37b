// Package stream consumes the backend's live sync-log event stream and
// maintains the newest-first log buffer shown while a channel sync runs.
package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// State is the explicit connection state of a LogStream.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateStreaming
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateStreaming:
		return "streaming"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Completion markers. A matching message, or any success-level event,
// signals that the backend sync job has finished.
var completionMarkers = []string{
	"Sync completed",
	"Sync failed",
}

// LogSource is the slice of the API client the stream depends on.
type LogSource interface {
	GetSyncLogs(ctx context.Context, channelID string) ([]model.SyncLogEntry, error)
	OpenSyncLogStream(ctx context.Context, channelID string) (io.ReadCloser, error)
}

// LogStream owns one stream session: history seed, live events, completion
// detection, and teardown. A stream error closes the session without retry;
// the buffer stays available for inspection. Close is mandatory on every
// exit path and idempotent.
type LogStream struct {
	source     LogSource
	onComplete func()

	mu      sync.Mutex
	state   State
	entries []model.SyncLogEntry // newest first
	body    io.ReadCloser
	cancel  context.CancelFunc

	// done is replaced on every Open so a straggling event handler from a
	// previous session can never consume the new session's completion.
	done *sync.Once

	// notify wakes a UI after buffer or state changes. Buffered so the read
	// loop never blocks on a slow consumer.
	notify chan struct{}
}

// New creates an idle stream. onComplete fires at most once per Open session
// when a completion-style event arrives; callers wire it to a forced channel
// list reload. It may be nil.
func New(source LogSource, onComplete func()) *LogStream {
	return &LogStream{
		source:     source,
		onComplete: onComplete,
		state:      StateIdle,
		done:       &sync.Once{},
		notify:     make(chan struct{}, 1),
	}
}

// Open seeds the buffer with log history, connects the live stream, and
// starts consuming events. The history fetch is best-effort: its failure is
// logged and ignored. Open resets the buffer; one LogStream serves one
// session at a time.
func (s *LogStream) Open(ctx context.Context, channelID string) error {
	s.mu.Lock()
	if s.state == StateConnecting || s.state == StateStreaming {
		s.mu.Unlock()
		return fmt.Errorf("log stream already open")
	}
	s.state = StateConnecting
	s.entries = nil
	s.done = &sync.Once{}
	s.mu.Unlock()
	s.wake()

	if history, err := s.source.GetSyncLogs(ctx, channelID); err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("Failed to fetch sync log history")
	} else {
		s.seed(history)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	body, err := s.source.OpenSyncLogStream(streamCtx, channelID)
	if err != nil {
		cancel()
		s.mu.Lock()
		s.state = StateClosed
		s.mu.Unlock()
		s.wake()
		return fmt.Errorf("failed to connect sync log stream: %w", err)
	}

	s.mu.Lock()
	s.state = StateStreaming
	s.body = body
	s.cancel = cancel
	s.mu.Unlock()
	s.wake()

	go s.readLoop(body, channelID)
	return nil
}

// Close tears the session down: cancels the connection, closes the body,
// and freezes the buffer. Safe to call from any exit path, any number of
// times; after the first call no further buffer updates occur.
func (s *LogStream) Close() {
	s.mu.Lock()
	if s.state == StateClosed || s.state == StateIdle {
		s.state = StateClosed
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	body := s.body
	cancel := s.cancel
	s.body = nil
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if body != nil {
		body.Close()
	}
	s.wake()
}

// State returns the current connection state.
func (s *LogStream) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Entries returns a newest-first snapshot of the buffer.
func (s *LogStream) Entries() []model.SyncLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]model.SyncLogEntry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Notify returns a channel that receives a wakeup after buffer or state
// changes. Intended for UI refresh loops.
func (s *LogStream) Notify() <-chan struct{} {
	return s.notify
}

func (s *LogStream) wake() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// seed installs history records, newest first. The backend returns history
// in chronological order.
func (s *LogStream) seed(history []model.SyncLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return
	}
	s.entries = make([]model.SyncLogEntry, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		s.entries = append(s.entries, history[i])
	}
}

// readLoop consumes server-sent events until the stream ends. Events apply
// strictly in arrival order. A transport error just closes the session; the
// user re-invokes the sync to get a fresh connection.
func (s *LogStream) readLoop(body io.ReadCloser, channelID string) {
	scanner := bufio.NewScanner(body)
	var data strings.Builder

	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			if data.Len() > 0 {
				s.handleEvent(body, data.String(), channelID)
				data.Reset()
			}
			continue
		}
		if payload, ok := strings.CutPrefix(line, "data:"); ok {
			data.WriteString(strings.TrimSpace(payload))
		}
		// Comment and id/event lines are ignored; the backend only sends
		// JSON-encoded data frames.
	}

	if data.Len() > 0 {
		s.handleEvent(body, data.String(), channelID)
	}

	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("Sync log stream ended with error")
	}
	s.closeSession(body)
}

// closeSession tears down the session that owns body. A read loop outliving
// its session (its body already detached by Close) must not touch a
// successor session, so teardown is keyed on body identity.
func (s *LogStream) closeSession(body io.ReadCloser) {
	s.mu.Lock()
	if s.body != body {
		s.mu.Unlock()
		return
	}
	s.state = StateClosed
	cancel := s.cancel
	s.body = nil
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	body.Close()
	s.wake()
}

func (s *LogStream) handleEvent(body io.ReadCloser, data, channelID string) {
	var event struct {
		Message   string `json:"message"`
		Level     string `json:"level"`
		CreatedAt string `json:"created_at"`
	}
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("Dropping unparseable sync log event")
		return
	}

	entry := model.SyncLogEntry{
		// Render key only, never used to deduplicate against history.
		ID:      uuid.NewString(),
		Message: event.Message,
		Level:   model.LogLevel(event.Level),
	}
	if ts, err := parseEventTime(event.CreatedAt); err == nil {
		entry.CreatedAt = ts
	}

	s.mu.Lock()
	if s.state == StateClosed || s.body != body {
		s.mu.Unlock()
		return
	}
	s.entries = append([]model.SyncLogEntry{entry}, s.entries...)
	done := s.done
	s.mu.Unlock()
	s.wake()

	if s.isCompletion(entry) {
		done.Do(func() {
			log.Info().Str("channel_id", channelID).Str("message", entry.Message).Msg("Sync job finished, refreshing channel cache")
			if s.onComplete != nil {
				s.onComplete()
			}
		})
	}
}

func (s *LogStream) isCompletion(entry model.SyncLogEntry) bool {
	if entry.Level == model.LogSuccess {
		return true
	}
	for _, marker := range completionMarkers {
		if strings.Contains(entry.Message, marker) {
			return true
		}
	}
	return false
}
