package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", "2026-08-12T10:30:00Z", time.Date(2026, 8, 12, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 nano", "2026-08-12T10:30:00.123456789Z", time.Date(2026, 8, 12, 10, 30, 0, 123456789, time.UTC)},
		{"python isoformat micros", "2026-08-12T10:30:00.123456", time.Date(2026, 8, 12, 10, 30, 0, 123456000, time.UTC)},
		{"python isoformat seconds", "2026-08-12T10:30:00", time.Date(2026, 8, 12, 10, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEventTime(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestParseEventTime_Unrecognized(t *testing.T) {
	_, err := parseEventTime("yesterday at noon")
	assert.Error(t, err)

	_, err = parseEventTime("")
	assert.Error(t, err)
}
