package service

import (
	"context"
	"fmt"

	"videotube/internal/domain"
	"videotube/internal/repository"
)

// LikeService toggles likes on videos, comments and tweets.
type LikeService struct {
	likeRepo repository.LikeRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

// ToggleVideo flips the caller's like on a video and reports the new state.
func (s *LikeService) ToggleVideo(ctx context.Context, userID, videoID string) (bool, error) {
	if !validUUID(videoID) {
		return false, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	return s.likeRepo.ToggleVideo(ctx, userID, videoID)
}

// ToggleComment flips the caller's like on a comment.
func (s *LikeService) ToggleComment(ctx context.Context, userID, commentID string) (bool, error) {
	if !validUUID(commentID) {
		return false, fmt.Errorf("%w: invalid comment id", domain.ErrInvalidArgument)
	}
	return s.likeRepo.ToggleComment(ctx, userID, commentID)
}

// ToggleTweet flips the caller's like on a tweet.
func (s *LikeService) ToggleTweet(ctx context.Context, userID, tweetID string) (bool, error) {
	if !validUUID(tweetID) {
		return false, fmt.Errorf("%w: invalid tweet id", domain.ErrInvalidArgument)
	}
	return s.likeRepo.ToggleTweet(ctx, userID, tweetID)
}

// LikedVideos lists the videos the caller has liked. A user with no liked
// videos gets not found rather than an empty list.
func (s *LikeService) LikedVideos(ctx context.Context, userID string) ([]domain.VideoView, error) {
	views, err := s.likeRepo.LikedVideos(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, fmt.Errorf("%w: no liked videos", domain.ErrNotFound)
	}
	return views, nil
}
