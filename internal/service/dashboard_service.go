package service

import (
	"context"

	"videotube/internal/domain"
	"videotube/internal/repository"
)

// DashboardService serves the channel owner's dashboard.
type DashboardService struct {
	videoRepo repository.VideoRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(videoRepo repository.VideoRepository) *DashboardService {
	return &DashboardService{videoRepo: videoRepo}
}

// Stats aggregates a channel's numbers. A channel that has published nothing
// yields zeros.
func (s *DashboardService) Stats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	return s.videoRepo.ChannelStats(ctx, channelID)
}

// Videos lists every video a channel owns, published or not.
func (s *DashboardService) Videos(ctx context.Context, channelID string) ([]domain.Video, error) {
	videos, err := s.videoRepo.ListByOwner(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}
