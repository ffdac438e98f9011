package service

import (
	"context"
	"io"

	"videotube/internal/domain"
)

// CommentServiceInterface defines the comment operations.
// Used for dependency injection and mocking in tests.
type CommentServiceInterface interface {
	ListForVideo(ctx context.Context, videoID string, page, limit int) (*domain.CommentPage, error)
	Add(ctx context.Context, videoID, authorID, content string) (*domain.Comment, error)
	Update(ctx context.Context, commentID, requesterID, content string) (*domain.Comment, error)
	Delete(ctx context.Context, commentID, requesterID string) error
}

// UserServiceInterface defines account, credential and channel operations.
type UserServiceInterface interface {
	Register(ctx context.Context, reg *domain.Registration) (*domain.User, error)
	Login(ctx context.Context, identifier, password string) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	UpdateAccount(ctx context.Context, userID, fullName, email string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, userID, contentType string, body io.Reader) (*domain.User, error)
	UpdateCoverImage(ctx context.Context, userID, contentType string, body io.Reader) (*domain.User, error)
	Channel(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID string) ([]domain.VideoView, error)
}

// VideoServiceInterface defines the video lifecycle operations.
type VideoServiceInterface interface {
	Publish(ctx context.Context, ownerID string, upload VideoUpload) (*domain.Video, error)
	Get(ctx context.Context, videoID, viewerID string) (*domain.VideoDetail, error)
	Delete(ctx context.Context, videoID, requesterID string) error
	UpdateThumbnail(ctx context.Context, videoID, requesterID, contentType string, body io.Reader) (*domain.Video, error)
	SetPublished(ctx context.Context, videoID, requesterID string, published bool) (*domain.Video, error)
	List(ctx context.Context, page, limit int) ([]domain.VideoView, error)
}

// LikeServiceInterface defines like toggles.
type LikeServiceInterface interface {
	ToggleVideo(ctx context.Context, userID, videoID string) (bool, error)
	ToggleComment(ctx context.Context, userID, commentID string) (bool, error)
	ToggleTweet(ctx context.Context, userID, tweetID string) (bool, error)
	LikedVideos(ctx context.Context, userID string) ([]domain.VideoView, error)
}

// SubscriptionServiceInterface defines subscription operations.
type SubscriptionServiceInterface interface {
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
	Subscribers(ctx context.Context, channelID string) ([]domain.UserProfile, error)
}

// TweetServiceInterface defines community post operations.
type TweetServiceInterface interface {
	Create(ctx context.Context, ownerID, content string) (*domain.Tweet, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Tweet, error)
	Update(ctx context.Context, tweetID, requesterID, content string) (*domain.Tweet, error)
	Delete(ctx context.Context, tweetID, requesterID string) error
}

// PlaylistServiceInterface defines playlist operations.
type PlaylistServiceInterface interface {
	Create(ctx context.Context, ownerID, name, description string) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error)
	Get(ctx context.Context, playlistID string) (*domain.Playlist, error)
	AddVideo(ctx context.Context, playlistID, requesterID, videoID string) error
	RemoveVideo(ctx context.Context, playlistID, requesterID, videoID string) error
}

// DashboardServiceInterface defines the channel dashboard reads.
type DashboardServiceInterface interface {
	Stats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
	Videos(ctx context.Context, channelID string) ([]domain.Video, error)
}
