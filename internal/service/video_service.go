package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"videotube/internal/domain"
	"videotube/internal/logger"
	"videotube/internal/media"
	"videotube/internal/repository"
	"videotube/internal/validator"
)

// VideoUpload carries the parts of a publish request.
type VideoUpload struct {
	Title                string
	Description          string
	Duration             float64
	VideoContentType     string
	Video                io.Reader
	ThumbnailContentType string
	Thumbnail            io.Reader
}

// VideoService handles the video lifecycle and listings.
type VideoService struct {
	videoRepo repository.VideoRepository
	userRepo  repository.UserRepository
	validator *validator.Validator
	media     media.Store
}

// NewVideoService creates a new VideoService.
func NewVideoService(videoRepo repository.VideoRepository, userRepo repository.UserRepository, v *validator.Validator, store media.Store) *VideoService {
	return &VideoService{videoRepo: videoRepo, userRepo: userRepo, validator: v, media: store}
}

// Publish uploads the media files and creates the video row. A failure after
// the uploads removes the uploaded objects again.
func (s *VideoService) Publish(ctx context.Context, ownerID string, upload VideoUpload) (*domain.Video, error) {
	if err := s.validator.ValidateVideoUpload(upload.Title, upload.Description); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, err.Error())
	}
	if upload.Video == nil {
		return nil, fmt.Errorf("%w: video file is required", domain.ErrInvalidArgument)
	}
	if upload.Thumbnail == nil {
		return nil, fmt.Errorf("%w: thumbnail file is required", domain.ErrInvalidArgument)
	}

	id := uuid.New().String()
	videoURL, err := s.media.Upload(ctx, "videos/"+id+"/video", upload.VideoContentType, upload.Video)
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}
	thumbURL, err := s.media.Upload(ctx, "videos/"+id+"/thumbnail", upload.ThumbnailContentType, upload.Thumbnail)
	if err != nil {
		s.removeObject(ctx, videoURL)
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	video := &domain.Video{
		ID:           id,
		OwnerID:      ownerID,
		Title:        upload.Title,
		Description:  upload.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbURL,
		Duration:     upload.Duration,
		Published:    true,
		CreatedAt:    time.Now(),
	}
	if err := s.videoRepo.Insert(ctx, video); err != nil {
		s.removeObject(ctx, videoURL)
		s.removeObject(ctx, thumbURL)
		return nil, err
	}

	logger.Info("video published", "video_id", id, "owner_id", ownerID)
	return video, nil
}

// Get returns the watch-page projection and counts the view. A known viewer
// also gets the video written into their watch history.
func (s *VideoService) Get(ctx context.Context, videoID, viewerID string) (*domain.VideoDetail, error) {
	if !validUUID(videoID) {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}

	detail, err := s.videoRepo.GetDetail(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		logger.Warn("failed to count view", "video_id", videoID, "error", err)
	}
	if viewerID != "" {
		if err := s.userRepo.RecordWatch(ctx, viewerID, videoID); err != nil {
			logger.Warn("failed to record watch", "video_id", videoID, "user_id", viewerID, "error", err)
		}
	}
	return detail, nil
}

// Delete removes the row and then the media objects. Object deletion is
// best-effort; an orphaned object is preferable to a dangling row.
func (s *VideoService) Delete(ctx context.Context, videoID, requesterID string) error {
	if !validUUID(videoID) {
		return fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}

	video, err := s.videoRepo.GetOwned(ctx, videoID, requesterID)
	if err != nil {
		return err
	}
	if err := s.videoRepo.Delete(ctx, videoID, requesterID); err != nil {
		return err
	}

	s.removeObject(ctx, video.VideoURL)
	s.removeObject(ctx, video.ThumbnailURL)

	logger.Info("video deleted", "video_id", videoID)
	return nil
}

// UpdateThumbnail replaces the thumbnail image, owner-guarded.
func (s *VideoService) UpdateThumbnail(ctx context.Context, videoID, requesterID, contentType string, body io.Reader) (*domain.Video, error) {
	if !validUUID(videoID) {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: thumbnail file is required", domain.ErrInvalidArgument)
	}

	before, err := s.videoRepo.GetOwned(ctx, videoID, requesterID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("videos/%s/thumbnail-%s", videoID, uuid.New().String())
	url, err := s.media.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("upload thumbnail: %w", err)
	}

	video, err := s.videoRepo.UpdateThumbnail(ctx, videoID, requesterID, url)
	if err != nil {
		return nil, err
	}

	s.removeObject(ctx, before.ThumbnailURL)
	return video, nil
}

// SetPublished flips a video's visibility, owner-guarded.
func (s *VideoService) SetPublished(ctx context.Context, videoID, requesterID string, published bool) (*domain.Video, error) {
	if !validUUID(videoID) {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	return s.videoRepo.SetPublished(ctx, videoID, requesterID, published)
}

// List returns one page of published videos. An empty page is an empty
// list, unlike the comment listing contract.
func (s *VideoService) List(ctx context.Context, page, limit int) ([]domain.VideoView, error) {
	offset, err := pageOffset(page, limit)
	if err != nil {
		return nil, err
	}
	views, err := s.videoRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []domain.VideoView{}
	}
	return views, nil
}

func (s *VideoService) removeObject(ctx context.Context, url string) {
	if url == "" {
		return
	}
	key, ok := s.media.ObjectKey(url)
	if !ok {
		return
	}
	if err := s.media.Delete(ctx, key); err != nil {
		logger.Warn("failed to delete media object", "key", key, "error", err)
	}
}
