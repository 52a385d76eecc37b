package model

import "time"

// LogLevel is the severity of a sync log line.
type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogSuccess LogLevel = "success"
	LogWarning LogLevel = "warning"
	LogError   LogLevel = "error"
)

// SyncLogEntry is one structured progress line emitted by a channel sync job.
// ID is backend-assigned for history records; streamed entries get a locally
// generated render key instead, which must never be used for deduplication.
type SyncLogEntry struct {
	ID        string    `json:"_id,omitempty"`
	Message   string    `json:"message"`
	Level     LogLevel  `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}
