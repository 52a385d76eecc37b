package stream

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

// fakeSource serves canned history and a pipe-backed live stream.
type fakeSource struct {
	history    []model.SyncLogEntry
	historyErr error
	openErr    error
	reader     io.ReadCloser
}

func (f *fakeSource) GetSyncLogs(_ context.Context, _ string) ([]model.SyncLogEntry, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history, nil
}

func (f *fakeSource) OpenSyncLogStream(_ context.Context, _ string) (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return f.reader, nil
}

func newPipeSource(history ...model.SyncLogEntry) (*fakeSource, *io.PipeWriter) {
	r, w := io.Pipe()
	return &fakeSource{history: history, reader: r}, w
}

func writeEvent(t *testing.T, w *io.PipeWriter, payload string) {
	t.Helper()
	_, err := w.Write([]byte("data: " + payload + "\n\n"))
	require.NoError(t, err)
}

func messages(entries []model.SyncLogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

func TestOpen_SeedsHistoryNewestFirst(t *testing.T) {
	source, w := newPipeSource(
		model.SyncLogEntry{ID: "1", Message: "Sync started", Level: model.LogInfo},
		model.SyncLogEntry{ID: "2", Message: "Fetched 10 videos", Level: model.LogInfo},
	)
	ls := New(source, nil)
	defer w.Close()

	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	assert.Equal(t, StateStreaming, ls.State())
	assert.Equal(t, []string{"Fetched 10 videos", "Sync started"}, messages(ls.Entries()))
}

func TestOpen_HistoryFailureIsTolerated(t *testing.T) {
	source, w := newPipeSource()
	source.historyErr = errors.New("backend down")
	ls := New(source, nil)
	defer w.Close()

	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	assert.Equal(t, StateStreaming, ls.State())
	assert.Empty(t, ls.Entries())
}

func TestOpen_ConnectFailureClosesSession(t *testing.T) {
	source := &fakeSource{openErr: errors.New("connect refused")}
	ls := New(source, nil)

	err := ls.Open(context.Background(), "UC123")
	require.Error(t, err)
	assert.Equal(t, StateClosed, ls.State())
}

func TestOpen_RejectsDoubleOpen(t *testing.T) {
	source, w := newPipeSource()
	ls := New(source, nil)
	defer w.Close()

	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	assert.Error(t, ls.Open(context.Background(), "UC123"))
}

func TestReadLoop_PrependsInArrivalOrder(t *testing.T) {
	source, w := newPipeSource()
	ls := New(source, nil)
	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	writeEvent(t, w, `{"message": "first", "level": "info"}`)
	writeEvent(t, w, `{"message": "second", "level": "info"}`)
	writeEvent(t, w, `{"message": "third", "level": "warning"}`)

	require.Eventually(t, func() bool {
		return len(ls.Entries()) == 3
	}, testWait, testTick)

	assert.Equal(t, []string{"third", "second", "first"}, messages(ls.Entries()))
	assert.Equal(t, model.LogWarning, ls.Entries()[0].Level)
	w.Close()
}

func TestReadLoop_DropsUnparseableEvents(t *testing.T) {
	source, w := newPipeSource()
	ls := New(source, nil)
	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	writeEvent(t, w, `not json at all`)
	writeEvent(t, w, `{"message": "valid", "level": "info"}`)

	require.Eventually(t, func() bool {
		return len(ls.Entries()) == 1
	}, testWait, testTick)
	assert.Equal(t, "valid", ls.Entries()[0].Message)
	w.Close()
}

func TestReadLoop_StreamEndClosesSession(t *testing.T) {
	source, w := newPipeSource()
	ls := New(source, nil)
	require.NoError(t, ls.Open(context.Background(), "UC123"))

	writeEvent(t, w, `{"message": "only", "level": "info"}`)
	w.Close()

	require.Eventually(t, func() bool {
		return ls.State() == StateClosed
	}, testWait, testTick)
	assert.Equal(t, []string{"only"}, messages(ls.Entries()))
}

func TestCompletion_FiresCallbackOnce(t *testing.T) {
	source, w := newPipeSource()
	var completions atomic.Int64
	ls := New(source, func() { completions.Add(1) })
	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	writeEvent(t, w, `{"message": "Fetched comments", "level": "info"}`)
	writeEvent(t, w, `{"message": "Sync completed: 120 comments", "level": "success"}`)
	writeEvent(t, w, `{"message": "Sync completed again somehow", "level": "success"}`)

	require.Eventually(t, func() bool {
		return len(ls.Entries()) == 3
	}, testWait, testTick)
	assert.EqualValues(t, 1, completions.Load(), "completion fires at most once per session")
	w.Close()
}

func TestCompletion_ResetsAcrossSessions(t *testing.T) {
	var completions atomic.Int64
	source, w1 := newPipeSource()
	ls := New(source, func() { completions.Add(1) })

	require.NoError(t, ls.Open(context.Background(), "UC123"))
	writeEvent(t, w1, `{"message": "Sync completed", "level": "success"}`)
	require.Eventually(t, func() bool {
		return completions.Load() == 1
	}, testWait, testTick)
	ls.Close()

	r2, w2 := io.Pipe()
	source.reader = r2
	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	writeEvent(t, w2, `{"message": "Sync completed", "level": "success"}`)
	require.Eventually(t, func() bool {
		return completions.Load() == 2
	}, testWait, testTick, "each session gets its own completion")
	w2.Close()
}

func TestCompletion_MarkerMatchesWithoutSuccessLevel(t *testing.T) {
	source, w := newPipeSource()
	var completions atomic.Int64
	ls := New(source, func() { completions.Add(1) })
	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	writeEvent(t, w, `{"message": "Sync failed: quota exceeded", "level": "error"}`)

	require.Eventually(t, func() bool {
		return completions.Load() == 1
	}, testWait, testTick)
	w.Close()
}

func TestClose_FreezesBuffer(t *testing.T) {
	source, w := newPipeSource()
	ls := New(source, nil)
	require.NoError(t, ls.Open(context.Background(), "UC123"))

	writeEvent(t, w, `{"message": "before close", "level": "info"}`)
	require.Eventually(t, func() bool {
		return len(ls.Entries()) == 1
	}, testWait, testTick)

	ls.Close()
	assert.Equal(t, StateClosed, ls.State())

	// Writes after Close fail once the pipe reader is gone; either way the
	// buffer must not change.
	w.Write([]byte(`data: {"message": "after close", "level": "info"}` + "\n\n"))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"before close"}, messages(ls.Entries()))
}

func TestClose_IsIdempotent(t *testing.T) {
	source, w := newPipeSource()
	ls := New(source, nil)
	defer w.Close()
	require.NoError(t, ls.Open(context.Background(), "UC123"))

	ls.Close()
	ls.Close()
	assert.Equal(t, StateClosed, ls.State())
}

func TestNotify_WakesOnNewEntries(t *testing.T) {
	source, w := newPipeSource()
	ls := New(source, nil)
	require.NoError(t, ls.Open(context.Background(), "UC123"))
	defer ls.Close()

	// Drain any wakeups from Open itself.
	for {
		select {
		case <-ls.Notify():
			continue
		default:
		}
		break
	}

	writeEvent(t, w, `{"message": "wake up", "level": "info"}`)

	select {
	case <-ls.Notify():
	case <-time.After(testWait):
		t.Fatal("expected a wakeup after a new entry")
	}
	w.Close()
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "streaming", StateStreaming.String())
	assert.Equal(t, "closed", StateClosed.String())
}
