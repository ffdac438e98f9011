package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"videotube/internal/domain"
	"videotube/internal/logger"
	"videotube/internal/repository"
)

const (
	// MaxPageSize bounds the limit parameter of paged listings.
	MaxPageSize = 100
)

// CommentService handles comment reads and ownership-guarded mutations.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// validUUID reports whether s parses as a UUID. Malformed ids are rejected
// before they reach the database.
func validUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// pageOffset validates page and limit and converts them to a row offset.
func pageOffset(page, limit int) (int, error) {
	if page < 1 {
		return 0, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidArgument)
	}
	if limit < 1 {
		return 0, fmt.Errorf("%w: limit must be >= 1", domain.ErrInvalidArgument)
	}
	if limit > MaxPageSize {
		return 0, fmt.Errorf("%w: limit must be <= %d", domain.ErrInvalidArgument, MaxPageSize)
	}
	return (page - 1) * limit, nil
}

// ListForVideo returns one page of a video's comments plus the total count
// over the whole video. The page and the count are read separately; a
// concurrent writer can make them momentarily inconsistent.
func (s *CommentService) ListForVideo(ctx context.Context, videoID string, page, limit int) (*domain.CommentPage, error) {
	if !validUUID(videoID) {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	offset, err := pageOffset(page, limit)
	if err != nil {
		return nil, err
	}

	items, err := s.commentRepo.ListByVideo(ctx, videoID, offset, limit)
	if err != nil {
		return nil, err
	}
	total, err := s.commentRepo.CountByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: no comments for video", domain.ErrNotFound)
	}

	return &domain.CommentPage{Items: items, TotalCount: total}, nil
}

// Add creates a comment on a video. The video must exist; a dangling video
// id surfaces as not found.
func (s *CommentService) Add(ctx context.Context, videoID, authorID, content string) (*domain.Comment, error) {
	if !validUUID(videoID) {
		return nil, fmt.Errorf("%w: invalid video id", domain.ErrInvalidArgument)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidArgument)
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		Content:   content,
		VideoID:   videoID,
		OwnerID:   authorID,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Insert(ctx, comment); err != nil {
		return nil, err
	}

	logger.Info("comment added", "comment_id", comment.ID, "video_id", videoID)
	return comment, nil
}

// Update replaces a comment's content on behalf of requesterID. Whether the
// comment is missing or owned by someone else is not distinguishable from
// the returned error.
func (s *CommentService) Update(ctx context.Context, commentID, requesterID, content string) (*domain.Comment, error) {
	if !validUUID(commentID) {
		return nil, fmt.Errorf("%w: invalid comment id", domain.ErrInvalidArgument)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrInvalidArgument)
	}

	return s.commentRepo.UpdateOwned(ctx, commentID, requesterID, content)
}

// Delete removes a comment on behalf of requesterID, with the same merged
// failure mode as Update.
func (s *CommentService) Delete(ctx context.Context, commentID, requesterID string) error {
	if !validUUID(commentID) {
		return fmt.Errorf("%w: invalid comment id", domain.ErrInvalidArgument)
	}
	if err := s.commentRepo.DeleteOwned(ctx, commentID, requesterID); err != nil {
		return err
	}

	logger.Info("comment deleted", "comment_id", commentID)
	return nil
}
