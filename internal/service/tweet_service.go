package service

import (
	"context"
	"fmt"
	"strings"

	"videotube/internal/domain"
	"videotube/internal/repository"
)

// TweetService manages channel community posts.
type TweetService struct {
	tweetRepo repository.TweetRepository
}

// NewTweetService creates a new TweetService.
func NewTweetService(tweetRepo repository.TweetRepository) *TweetService {
	return &TweetService{tweetRepo: tweetRepo}
}

// Create posts a new tweet for ownerID.
func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*domain.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidArgument)
	}

	tweet := &domain.Tweet{OwnerID: ownerID, Content: content}
	if err := s.tweetRepo.Insert(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// ListByUser returns a user's tweets, newest first.
func (s *TweetService) ListByUser(ctx context.Context, userID string) ([]domain.Tweet, error) {
	if !validUUID(userID) {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidArgument)
	}
	tweets, err := s.tweetRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tweets == nil {
		tweets = []domain.Tweet{}
	}
	return tweets, nil
}

// Update edits a tweet's content on behalf of requesterID. A missing tweet
// and someone else's tweet fail identically.
func (s *TweetService) Update(ctx context.Context, tweetID, requesterID, content string) (*domain.Tweet, error) {
	if !validUUID(tweetID) {
		return nil, fmt.Errorf("%w: invalid tweet id", domain.ErrInvalidArgument)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidArgument)
	}
	return s.tweetRepo.UpdateOwned(ctx, tweetID, requesterID, content)
}

// Delete removes a tweet on behalf of requesterID.
func (s *TweetService) Delete(ctx context.Context, tweetID, requesterID string) error {
	if !validUUID(tweetID) {
		return fmt.Errorf("%w: invalid tweet id", domain.ErrInvalidArgument)
	}
	return s.tweetRepo.DeleteOwned(ctx, tweetID, requesterID)
}
