package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1_000, "1.0K"},
		{15_300, "15.3K"},
		{999_999, "1000.0K"},
		{1_000_000, "1.0M"},
		{2_450_000, "2.5M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCount(tt.n), "formatCount(%d)", tt.n)
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "never", formatTime(nil))

	var zero time.Time
	assert.Equal(t, "never", formatTime(&zero))

	ts := time.Date(2026, 8, 12, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-08-12 10:30", formatTime(&ts))
}
