package domain

import "time"

// Video represents an uploaded video. The media files themselves live in
// object storage; only their URLs are stored here.
type Video struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     float64   `json:"duration"`
	Views        int64     `json:"views"`
	Published    bool      `json:"is_published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VideoView is a video with its channel resolved to a public profile, as
// returned by listings and the watch history.
type VideoView struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	VideoURL     string       `json:"video_url"`
	ThumbnailURL string       `json:"thumbnail_url"`
	Duration     float64      `json:"duration"`
	Views        int64        `json:"views"`
	Owner        *UserProfile `json:"owner"`
	CreatedAt    time.Time    `json:"created_at"`
}

// VideoDetail is the full watch-page projection: the video, its channel,
// and the engagement counts gathered around it.
type VideoDetail struct {
	Video
	Channel         *UserProfile `json:"channel"`
	SubscriberCount int64        `json:"subscriber_count"`
	LikeCount       int64        `json:"like_count"`
	CommentCount    int64        `json:"comment_count"`
}

// ChannelStats aggregates a channel's dashboard numbers.
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
}
