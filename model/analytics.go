package model

// SentimentCounts holds raw per-polarity comment counts.
type SentimentCounts struct {
	Positive int64 `json:"positive"`
	Neutral  int64 `json:"neutral"`
	Negative int64 `json:"negative"`
}

// SentimentPercentages holds per-polarity shares of the analyzed total.
type SentimentPercentages struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// SentimentBreakdown is the channel-wide sentiment aggregate.
type SentimentBreakdown struct {
	Breakdown   SentimentCounts      `json:"breakdown"`
	Percentages SentimentPercentages `json:"percentages"`
	Total       int64                `json:"total"`
}

// ChannelSummary is the dashboard headline aggregate for one channel.
type ChannelSummary struct {
	TotalComments      int64              `json:"total_comments"`
	TotalVideos        int64              `json:"total_videos"`
	UniqueCommenters   int64              `json:"unique_commenters"`
	BookmarkedComments int64              `json:"bookmarked_comments"`
	Sentiment          SentimentBreakdown `json:"sentiment"`
	RecentComments7d   int64              `json:"recent_comments_7d"`
}

// SentimentTrend is one day's sentiment totals in a trend series.
type SentimentTrend struct {
	Date     string `json:"date"`
	Positive int64  `json:"positive"`
	Neutral  int64  `json:"neutral"`
	Negative int64  `json:"negative"`
	Total    int64  `json:"total"`
}

// TopVideo ranks a video by comment engagement and sentiment.
type TopVideo struct {
	VideoID        string  `json:"video_id"`
	Title          string  `json:"title"`
	ThumbnailURL   string  `json:"thumbnail_url,omitempty"`
	PublishedAt    string  `json:"published_at,omitempty"`
	CommentCount   int64   `json:"comment_count"`
	PositiveCount  int64   `json:"positive_count"`
	NegativeCount  int64   `json:"negative_count"`
	SentimentRatio float64 `json:"sentiment_ratio"`
}
