package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"videotube/internal/domain"
)

// MockCommentService mocks service.CommentServiceInterface.
type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListForVideo(ctx context.Context, videoID string, page, limit int) (*domain.CommentPage, error) {
	args := m.Called(ctx, videoID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentPage), args.Error(1)
}

func (m *MockCommentService) Add(ctx context.Context, videoID, authorID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, videoID, authorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, commentID, requesterID, content string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID, requesterID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID, requesterID string) error {
	args := m.Called(ctx, commentID, requesterID)
	return args.Error(0)
}
