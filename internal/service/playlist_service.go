package service

import (
	"context"
	"fmt"
	"strings"

	"videotube/internal/domain"
	"videotube/internal/repository"
	"videotube/internal/validator"
)

// PlaylistService manages user playlists.
type PlaylistService struct {
	playlistRepo repository.PlaylistRepository
	validator    *validator.Validator
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(playlistRepo repository.PlaylistRepository, v *validator.Validator) *PlaylistService {
	return &PlaylistService{playlistRepo: playlistRepo, validator: v}
}

// Create makes a new empty playlist for ownerID.
func (s *PlaylistService) Create(ctx context.Context, ownerID, name, description string) (*domain.Playlist, error) {
	if err := s.validator.ValidatePlaylist(name, description); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, err.Error())
	}

	playlist := &domain.Playlist{
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := s.playlistRepo.Insert(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// ListByUser returns a user's playlists, newest first.
func (s *PlaylistService) ListByUser(ctx context.Context, userID string) ([]domain.Playlist, error) {
	if !validUUID(userID) {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrInvalidArgument)
	}
	playlists, err := s.playlistRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []domain.Playlist{}
	}
	return playlists, nil
}

// Get fetches one playlist with its video ids.
func (s *PlaylistService) Get(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	if !validUUID(playlistID) {
		return nil, fmt.Errorf("%w: invalid playlist id", domain.ErrInvalidArgument)
	}
	return s.playlistRepo.Get(ctx, playlistID)
}

// AddVideo appends a video to a playlist the requester owns.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, requesterID, videoID string) error {
	if !validUUID(playlistID) {
		return fmt.Errorf("%w: invalid playlist id", domain.ErrInvalidArgument)
	}
	if !validUUID(videoID) {
		return fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	return s.playlistRepo.AddVideo(ctx, playlistID, requesterID, videoID)
}

// RemoveVideo takes a video out of a playlist the requester owns.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, requesterID, videoID string) error {
	if !validUUID(playlistID) {
		return fmt.Errorf("%w: invalid playlist id", domain.ErrInvalidArgument)
	}
	if !validUUID(videoID) {
		return fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	return s.playlistRepo.RemoveVideo(ctx, playlistID, requesterID, videoID)
}
