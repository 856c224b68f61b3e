package models

// VideoStats holds the public counters of a single video.
type VideoStats struct {
	ViewCount    int64 `json:"view_count"`
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// VideoRecord is one fetched video. Immutable once returned by the data
// client; a new analysis run replaces it wholesale.
type VideoRecord struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Tags         []string   `json:"tags"`
	ThumbnailURL string     `json:"thumbnail_url"`
	ChannelTitle string     `json:"channel_title"`
	Stats        VideoStats `json:"stats"`
}

// ChannelStats holds the public counters of a channel.
type ChannelStats struct {
	ViewCount       int64 `json:"view_count"`
	SubscriberCount int64 `json:"subscriber_count"`
	VideoCount      int64 `json:"video_count"`
}

// VideoSummary is a recent-upload entry on a ChannelRecord.
type VideoSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ChannelRecord is one fetched channel with its most recent uploads,
// newest first.
type ChannelRecord struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	ThumbnailURL string         `json:"thumbnail_url"`
	Stats        ChannelStats   `json:"stats"`
	RecentVideos []VideoSummary `json:"recent_videos"`
}
