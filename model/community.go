package model

import "time"

// Commenter is an aggregated view of a single comment author on a channel.
type Commenter struct {
	AuthorChannelID    string     `json:"author_channel_id"`
	AuthorName         string     `json:"author_name"`
	AuthorProfileImage string     `json:"author_profile_image,omitempty"`
	CommentCount       int64      `json:"comment_count"`
	TotalLikesReceived int64      `json:"total_likes_received"`
	VideosCount        int64      `json:"videos_count"`
	StreakDays         int64      `json:"streak_days"`
	FirstCommentAt     *time.Time `json:"first_comment_at,omitempty"`
	LastCommentAt      *time.Time `json:"last_comment_at,omitempty"`
	IsRepeat           bool       `json:"is_repeat"`
}

// CommunityStats summarizes the commenter population of a channel.
type CommunityStats struct {
	TotalCommenters    int64       `json:"total_commenters"`
	UniqueCommenters   int64       `json:"unique_commenters"`
	RepeatCommenters   int64       `json:"repeat_commenters"`
	RepeatPercentage   float64     `json:"repeat_percentage"`
	AvgCommentsPerUser float64     `json:"avg_comments_per_user"`
	TopCommenters      []Commenter `json:"top_commenters"`
}

// CommenterProfile pairs a commenter aggregate with their latest comments.
type CommenterProfile struct {
	Profile        Commenter `json:"profile"`
	RecentComments []Comment `json:"recent_comments"`
}
