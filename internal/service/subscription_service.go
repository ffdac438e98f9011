package service

import (
	"context"
	"fmt"

	"videotube/internal/domain"
	"videotube/internal/repository"
)

// SubscriptionService manages channel subscriptions.
type SubscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(subscriptionRepo repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptionRepo: subscriptionRepo}
}

// Toggle flips the caller's subscription to a channel and reports the new
// state. Subscribing to your own channel is rejected.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	if !validUUID(channelID) {
		return false, fmt.Errorf("%w: invalid channel id", domain.ErrInvalidArgument)
	}
	if subscriberID == channelID {
		return false, fmt.Errorf("%w: cannot subscribe to yourself", domain.ErrInvalidArgument)
	}
	return s.subscriptionRepo.Toggle(ctx, subscriberID, channelID)
}

// Subscribers lists the public profiles of a channel's subscribers.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID string) ([]domain.UserProfile, error) {
	if !validUUID(channelID) {
		return nil, fmt.Errorf("%w: invalid channel id", domain.ErrInvalidArgument)
	}
	profiles, err := s.subscriptionRepo.Subscribers(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []domain.UserProfile{}
	}
	return profiles, nil
}
