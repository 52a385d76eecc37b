package model

import "time"

// Sentiment is the backend-assigned polarity of a single comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Comment is a single analyzed YouTube comment.
type Comment struct {
	ID                 string     `json:"id,omitempty"`
	CommentID          string     `json:"comment_id"`
	VideoID            string     `json:"video_id"`
	ChannelID          string     `json:"channel_id"`
	AuthorName         string     `json:"author_name"`
	AuthorChannelID    string     `json:"author_channel_id"`
	AuthorProfileImage string     `json:"author_profile_image,omitempty"`
	Text               string     `json:"text"`
	LikeCount          int64      `json:"like_count"`
	ReplyCount         int64      `json:"reply_count"`
	PublishedAt        time.Time  `json:"published_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
	ParentID           string     `json:"parent_id,omitempty"`
	Sentiment          Sentiment  `json:"sentiment,omitempty"`
	SentimentScore     float64    `json:"sentiment_score,omitempty"`
	Tags               []string   `json:"tags"`
	IsBookmarked       bool       `json:"is_bookmarked"`
	IsReply            bool       `json:"is_reply"`
}

// CommentFilter narrows a channel comment listing. Zero values are omitted
// from the request.
type CommentFilter struct {
	Sentiment    Sentiment
	Tags         string
	VideoID      string
	IsBookmarked *bool
	DateFrom     string
	DateTo       string
	Search       string
	Page         int
	Limit        int
}

// PaginatedComments is the backend's paging envelope for comment listings.
type PaginatedComments struct {
	Items []Comment `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Pages int       `json:"pages"`
}

// VideoComments is the offset-paged comment listing scoped to one video.
type VideoComments struct {
	Items   []Comment `json:"items"`
	Total   int64     `json:"total"`
	VideoID string    `json:"video_id"`
}

// Tag is a user- or system-defined comment label.
type Tag struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
	IsSystem    bool   `json:"is_system"`
	IsActive    bool   `json:"is_active"`
	UsageCount  int64  `json:"usage_count"`
}
