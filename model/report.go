package model

import "time"

// ReportStatus tracks backend report generation.
type ReportStatus string

const (
	ReportGenerating ReportStatus = "generating"
	ReportCompleted  ReportStatus = "completed"
	ReportError      ReportStatus = "error"
)

// ReportData is the aggregate payload of a generated report.
type ReportData struct {
	TotalComments       int64            `json:"total_comments"`
	TotalVideos         int64            `json:"total_videos"`
	UniqueCommenters    int64            `json:"unique_commenters"`
	SentimentBreakdown  map[string]int64 `json:"sentiment_breakdown"`
	SentimentPercentage map[string]float64 `json:"sentiment_percentage"`
	TagBreakdown        map[string]int64 `json:"tag_breakdown"`
	TopVideos           []Video          `json:"top_videos"`
	TopCommenters       []Commenter      `json:"top_commenters"`
}

// Report is a date-ranged analytics report for one channel.
type Report struct {
	ID          string       `json:"id,omitempty"`
	ChannelID   string       `json:"channel_id"`
	Title       string       `json:"title"`
	DateFrom    string       `json:"date_from"`
	DateTo      string       `json:"date_to"`
	Data        ReportData   `json:"data"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// ChatMessage is one exchange with the comment AI assistant.
type ChatMessage struct {
	UserMessage string    `json:"user_message"`
	AIResponse  string    `json:"ai_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// ChatReply is the immediate response to a chat send.
type ChatReply struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// SubscriptionStatus describes the signed-in user's billing plan.
type SubscriptionStatus struct {
	Status        string `json:"status"`
	Plan          string `json:"plan"`
	MaxChannels   int    `json:"max_channels"`
	Authenticated bool   `json:"authenticated"`
}
