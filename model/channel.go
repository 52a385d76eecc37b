// Package model contains the wire types exchanged with the CreatorPulse backend.
package model

import "time"

// SyncStatus is the lifecycle state of a channel's comment ingestion job.
type SyncStatus string

const (
	SyncPending   SyncStatus = "pending"
	SyncSyncing   SyncStatus = "syncing"
	SyncCompleted SyncStatus = "completed"
	SyncError     SyncStatus = "error"
)

// Channel represents a connected YouTube channel tracked for comment analysis.
type Channel struct {
	ID                  string     `json:"id,omitempty"`
	ChannelID           string     `json:"channel_id"`
	Name                string     `json:"name"`
	Description         string     `json:"description,omitempty"`
	ThumbnailURL        string     `json:"thumbnail_url,omitempty"`
	SubscriberCount     int64      `json:"subscriber_count,omitempty"`
	VideoCount          int64      `json:"video_count,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	LastSynced          *time.Time `json:"last_synced,omitempty"`
	SyncStatus          SyncStatus `json:"sync_status"`
	TotalComments       int64      `json:"total_comments"`
	TotalVideosAnalyzed int64      `json:"total_videos_analyzed"`
}

// ChannelSyncStatus is the polled fallback view of a running sync job.
type ChannelSyncStatus struct {
	ChannelID           string     `json:"channel_id"`
	SyncStatus          SyncStatus `json:"sync_status"`
	LastSynced          *time.Time `json:"last_synced,omitempty"`
	TotalComments       int64      `json:"total_comments"`
	TotalVideosAnalyzed int64      `json:"total_videos_analyzed"`
}

// Video represents an analyzed video belonging to a channel.
type Video struct {
	ID                   string             `json:"id,omitempty"`
	VideoID              string             `json:"video_id"`
	ChannelID            string             `json:"channel_id"`
	Title                string             `json:"title"`
	Description          string             `json:"description,omitempty"`
	ThumbnailURL         string             `json:"thumbnail_url,omitempty"`
	PublishedAt          *time.Time         `json:"published_at,omitempty"`
	ViewCount            int64              `json:"view_count,omitempty"`
	LikeCount            int64              `json:"like_count,omitempty"`
	CommentCount         int64              `json:"comment_count"`
	AnalyzedCommentCount int64              `json:"analyzed_comment_count"`
	SentimentBreakdown   *SentimentCounts   `json:"sentiment_breakdown,omitempty"`
	TopTags              []VideoTagCount    `json:"top_tags,omitempty"`
}

// VideoTagCount pairs a tag with how often it occurs on a video's comments.
type VideoTagCount struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}
