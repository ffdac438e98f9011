package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videotube/internal/domain"
	"videotube/internal/repository"
)

func TestPostgresLikeRepository_Toggle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	userRepo := repository.NewPostgresUserRepository(testDB.Pool)
	videoRepo := repository.NewPostgresVideoRepository(testDB.Pool)
	likeRepo := repository.NewPostgresLikeRepository(testDB.Pool)
	ctx := context.Background()

	setup := func(t *testing.T) (userID, videoID string) {
		t.Helper()
		testDB.TruncateTables(t, "likes", "videos", "users")

		u := &domain.User{
			ID:           uuid.New().String(),
			Username:     "user_" + uuid.New().String()[:8],
			FullName:     "Test User",
			Email:        uuid.New().String() + "@example.com",
			PasswordHash: "hashed",
			CreatedAt:    time.Now(),
		}
		require.NoError(t, userRepo.Insert(ctx, u))

		v := &domain.Video{
			ID:        uuid.New().String(),
			OwnerID:   u.ID,
			Title:     "Test Video",
			VideoURL:  "https://media.example.com/v.mp4",
			Published: true,
			CreatedAt: time.Now(),
		}
		require.NoError(t, videoRepo.Insert(ctx, v))
		return u.ID, v.ID
	}

	t.Run("like then unlike", func(t *testing.T) {
		userID, videoID := setup(t)

		liked, err := likeRepo.ToggleVideo(ctx, userID, videoID)
		require.NoError(t, err)
		assert.True(t, liked)

		liked, err = likeRepo.ToggleVideo(ctx, userID, videoID)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("liking a missing target is not found", func(t *testing.T) {
		userID, _ := setup(t)

		_, err := likeRepo.ToggleVideo(ctx, userID, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("liked videos come back newest like first", func(t *testing.T) {
		userID, videoID := setup(t)

		second := &domain.Video{
			ID:        uuid.New().String(),
			OwnerID:   userID,
			Title:     "Second Video",
			VideoURL:  "https://media.example.com/v2.mp4",
			Published: true,
			CreatedAt: time.Now(),
		}
		require.NoError(t, videoRepo.Insert(ctx, second))

		_, err := likeRepo.ToggleVideo(ctx, userID, videoID)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
		_, err = likeRepo.ToggleVideo(ctx, userID, second.ID)
		require.NoError(t, err)

		views, err := likeRepo.LikedVideos(ctx, userID)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, second.ID, views[0].ID)
		assert.Equal(t, videoID, views[1].ID)
		require.NotNil(t, views[0].Owner)
		assert.Equal(t, userID, views[0].Owner.ID)
	})
}
