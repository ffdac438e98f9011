package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"videotube/internal/domain"
	"videotube/internal/mocks"
	"videotube/internal/service"
	"videotube/internal/validator"
)

func TestVideoService_Publish(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New().String()

	upload := func() service.VideoUpload {
		return service.VideoUpload{
			Title:                "My Video",
			Description:          "About things",
			Duration:             42.5,
			VideoContentType:     "video/mp4",
			Video:                strings.NewReader("video-bytes"),
			ThumbnailContentType: "image/png",
			Thumbnail:            strings.NewReader("thumb-bytes"),
		}
	}

	t.Run("uploads both files and stores their urls", func(t *testing.T) {
		videoRepo := new(mocks.MockVideoRepository)
		store := new(mocks.MockMediaStore)
		svc := service.NewVideoService(videoRepo, new(mocks.MockUserRepository), validator.NewValidator(), store)

		store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "/video")
		}), "video/mp4", mock.Anything).Return("https://media.example.com/v", nil)
		store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "/thumbnail")
		}), "image/png", mock.Anything).Return("https://media.example.com/t", nil)
		videoRepo.On("Insert", mock.Anything, mock.MatchedBy(func(v *domain.Video) bool {
			return v.VideoURL == "https://media.example.com/v" &&
				v.ThumbnailURL == "https://media.example.com/t" &&
				v.OwnerID == ownerID && v.Published
		})).Return(nil)

		video, err := svc.Publish(ctx, ownerID, upload())

		require.NoError(t, err)
		assert.Equal(t, "My Video", video.Title)
		store.AssertExpectations(t)
		videoRepo.AssertExpectations(t)
	})

	t.Run("removes the video object when the thumbnail upload fails", func(t *testing.T) {
		videoRepo := new(mocks.MockVideoRepository)
		store := new(mocks.MockMediaStore)
		svc := service.NewVideoService(videoRepo, new(mocks.MockUserRepository), validator.NewValidator(), store)

		store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "/video")
		}), "video/mp4", mock.Anything).Return("https://media.example.com/v", nil)
		store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, "/thumbnail")
		}), "image/png", mock.Anything).Return("", assert.AnError)
		store.On("ObjectKey", "https://media.example.com/v").Return("videos/x/video", true)
		store.On("Delete", mock.Anything, "videos/x/video").Return(nil)

		_, err := svc.Publish(ctx, ownerID, upload())

		require.Error(t, err)
		videoRepo.AssertNotCalled(t, "Insert")
		store.AssertExpectations(t)
	})

	t.Run("rejects missing metadata", func(t *testing.T) {
		svc := service.NewVideoService(new(mocks.MockVideoRepository), new(mocks.MockUserRepository), validator.NewValidator(), new(mocks.MockMediaStore))

		u := upload()
		u.Title = "  "
		_, err := svc.Publish(ctx, ownerID, u)

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("rejects missing files", func(t *testing.T) {
		svc := service.NewVideoService(new(mocks.MockVideoRepository), new(mocks.MockUserRepository), validator.NewValidator(), new(mocks.MockMediaStore))

		u := upload()
		u.Video = nil
		_, err := svc.Publish(ctx, ownerID, u)

		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestVideoService_Get(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.New().String()
	viewerID := uuid.New().String()

	t.Run("counts the view and records the watch", func(t *testing.T) {
		videoRepo := new(mocks.MockVideoRepository)
		userRepo := new(mocks.MockUserRepository)
		svc := service.NewVideoService(videoRepo, userRepo, validator.NewValidator(), new(mocks.MockMediaStore))

		detail := &domain.VideoDetail{Video: domain.Video{ID: videoID, Title: "t"}, LikeCount: 3}
		videoRepo.On("GetDetail", mock.Anything, videoID).Return(detail, nil)
		videoRepo.On("IncrementViews", mock.Anything, videoID).Return(nil)
		userRepo.On("RecordWatch", mock.Anything, viewerID, videoID).Return(nil)

		got, err := svc.Get(ctx, videoID, viewerID)

		require.NoError(t, err)
		assert.Equal(t, detail, got)
		videoRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("anonymous viewers leave no history", func(t *testing.T) {
		videoRepo := new(mocks.MockVideoRepository)
		userRepo := new(mocks.MockUserRepository)
		svc := service.NewVideoService(videoRepo, userRepo, validator.NewValidator(), new(mocks.MockMediaStore))

		detail := &domain.VideoDetail{Video: domain.Video{ID: videoID}}
		videoRepo.On("GetDetail", mock.Anything, videoID).Return(detail, nil)
		videoRepo.On("IncrementViews", mock.Anything, videoID).Return(nil)

		_, err := svc.Get(ctx, videoID, "")

		require.NoError(t, err)
		userRepo.AssertNotCalled(t, "RecordWatch")
	})

	t.Run("unknown video is not found", func(t *testing.T) {
		videoRepo := new(mocks.MockVideoRepository)
		svc := service.NewVideoService(videoRepo, new(mocks.MockUserRepository), validator.NewValidator(), new(mocks.MockMediaStore))

		videoRepo.On("GetDetail", mock.Anything, videoID).Return(nil, domain.ErrNotFound)

		_, err := svc.Get(ctx, videoID, "")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		videoRepo.AssertNotCalled(t, "IncrementViews")
	})
}

func TestVideoService_Delete(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.New().String()
	ownerID := uuid.New().String()

	t.Run("removes the row then the objects", func(t *testing.T) {
		videoRepo := new(mocks.MockVideoRepository)
		store := new(mocks.MockMediaStore)
		svc := service.NewVideoService(videoRepo, new(mocks.MockUserRepository), validator.NewValidator(), store)

		video := &domain.Video{ID: videoID, OwnerID: ownerID,
			VideoURL: "https://media.example.com/v", ThumbnailURL: "https://media.example.com/t"}
		videoRepo.On("GetOwned", mock.Anything, videoID, ownerID).Return(video, nil)
		videoRepo.On("Delete", mock.Anything, videoID, ownerID).Return(nil)
		store.On("ObjectKey", video.VideoURL).Return("k/v", true)
		store.On("ObjectKey", video.ThumbnailURL).Return("k/t", true)
		store.On("Delete", mock.Anything, "k/v").Return(nil)
		store.On("Delete", mock.Anything, "k/t").Return(nil)

		require.NoError(t, svc.Delete(ctx, videoID, ownerID))
		store.AssertExpectations(t)
	})

	t.Run("non-owner cannot tell absence from denial", func(t *testing.T) {
		videoRepo := new(mocks.MockVideoRepository)
		svc := service.NewVideoService(videoRepo, new(mocks.MockUserRepository), validator.NewValidator(), new(mocks.MockMediaStore))

		videoRepo.On("GetOwned", mock.Anything, videoID, ownerID).
			Return(nil, domain.ErrNotAuthorizedOrNotFound)

		err := svc.Delete(ctx, videoID, ownerID)

		assert.ErrorIs(t, err, domain.ErrNotAuthorizedOrNotFound)
		videoRepo.AssertNotCalled(t, "Delete")
	})
}
