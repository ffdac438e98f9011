package repository

import (
	"context"

	"videotube/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, id string, token *string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateAccount(ctx context.Context, id, fullName, email string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) (*domain.User, error)
	UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*domain.User, error)
	ChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error)
	RecordWatch(ctx context.Context, userID, videoID string) error
	WatchHistory(ctx context.Context, userID string) ([]domain.VideoView, error)
}

// VideoRepository defines methods for video data access.
type VideoRepository interface {
	Insert(ctx context.Context, video *domain.Video) error
	GetDetail(ctx context.Context, id string) (*domain.VideoDetail, error)
	IncrementViews(ctx context.Context, id string) error
	GetOwned(ctx context.Context, id, ownerID string) (*domain.Video, error)
	Delete(ctx context.Context, id, ownerID string) error
	UpdateThumbnail(ctx context.Context, id, ownerID, thumbnailURL string) (*domain.Video, error)
	SetPublished(ctx context.Context, id, ownerID string, published bool) (*domain.Video, error)
	List(ctx context.Context, offset, limit int) ([]domain.VideoView, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Video, error)
	ChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) error
	ListByVideo(ctx context.Context, videoID string, offset, limit int) ([]domain.CommentView, error)
	CountByVideo(ctx context.Context, videoID string) (int64, error)
	UpdateOwned(ctx context.Context, commentID, ownerID, content string) (*domain.Comment, error)
	DeleteOwned(ctx context.Context, commentID, ownerID string) error
}

// LikeRepository defines methods for like data access.
type LikeRepository interface {
	ToggleVideo(ctx context.Context, userID, videoID string) (bool, error)
	ToggleComment(ctx context.Context, userID, commentID string) (bool, error)
	ToggleTweet(ctx context.Context, userID, tweetID string) (bool, error)
	LikedVideos(ctx context.Context, userID string) ([]domain.VideoView, error)
}

// SubscriptionRepository defines methods for subscription data access.
type SubscriptionRepository interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
	Subscribers(ctx context.Context, channelID string) ([]domain.UserProfile, error)
}

// TweetRepository defines methods for tweet data access.
type TweetRepository interface {
	Insert(ctx context.Context, tweet *domain.Tweet) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error)
	UpdateOwned(ctx context.Context, tweetID, ownerID, content string) (*domain.Tweet, error)
	DeleteOwned(ctx context.Context, tweetID, ownerID string) error
}

// PlaylistRepository defines methods for playlist data access.
type PlaylistRepository interface {
	Insert(ctx context.Context, playlist *domain.Playlist) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error)
	Get(ctx context.Context, id string) (*domain.Playlist, error)
	AddVideo(ctx context.Context, playlistID, ownerID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, ownerID, videoID string) error
}
