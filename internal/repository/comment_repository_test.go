package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videotube/internal/domain"
	"videotube/internal/repository"
)

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	userRepo := repository.NewPostgresUserRepository(testDB.Pool)
	videoRepo := repository.NewPostgresVideoRepository(testDB.Pool)
	commentRepo := repository.NewPostgresCommentRepository(testDB.Pool)
	ctx := context.Background()

	createUser := func(t *testing.T) *domain.User {
		t.Helper()
		u := &domain.User{
			ID:           uuid.New().String(),
			Username:     "user_" + uuid.New().String()[:8],
			FullName:     "Test User",
			Email:        uuid.New().String() + "@example.com",
			PasswordHash: "hashed",
			CreatedAt:    time.Now(),
		}
		require.NoError(t, userRepo.Insert(ctx, u))
		return u
	}

	createVideo := func(t *testing.T, ownerID string) *domain.Video {
		t.Helper()
		v := &domain.Video{
			ID:        uuid.New().String(),
			OwnerID:   ownerID,
			Title:     "Test Video",
			VideoURL:  "https://media.example.com/v.mp4",
			Published: true,
			CreatedAt: time.Now(),
		}
		require.NoError(t, videoRepo.Insert(ctx, v))
		return v
	}

	addComment := func(t *testing.T, videoID, ownerID, content string, createdAt time.Time) *domain.Comment {
		t.Helper()
		c := &domain.Comment{
			ID:        uuid.New().String(),
			Content:   content,
			VideoID:   videoID,
			OwnerID:   ownerID,
			CreatedAt: createdAt,
		}
		require.NoError(t, commentRepo.Insert(ctx, c))
		return c
	}

	t.Run("insert rejects unknown video", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "videos", "users")
		user := createUser(t)

		c := &domain.Comment{
			ID:        uuid.New().String(),
			Content:   "orphan",
			VideoID:   uuid.New().String(),
			OwnerID:   user.ID,
			CreatedAt: time.Now(),
		}
		err := commentRepo.Insert(ctx, c)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list returns newest first with joined owner", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "videos", "users")
		user := createUser(t)
		video := createVideo(t, user.ID)

		base := time.Now().Add(-time.Hour)
		addComment(t, video.ID, user.ID, "first", base)
		addComment(t, video.ID, user.ID, "second", base.Add(time.Minute))
		addComment(t, video.ID, user.ID, "third", base.Add(2*time.Minute))

		items, err := commentRepo.ListByVideo(ctx, video.ID, 0, 10)
		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.Equal(t, "third", items[0].Content)
		assert.Equal(t, "second", items[1].Content)
		assert.Equal(t, "first", items[2].Content)
		require.NotNil(t, items[0].Owner)
		assert.Equal(t, user.ID, items[0].Owner.ID)
		assert.Equal(t, user.Username, items[0].Owner.Username)
	})

	t.Run("pagination partitions without overlap", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "videos", "users")
		user := createUser(t)
		video := createVideo(t, user.ID)

		base := time.Now().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			addComment(t, video.ID, user.ID, fmt.Sprintf("comment-%d", i), base.Add(time.Duration(i)*time.Minute))
		}

		page1, err := commentRepo.ListByVideo(ctx, video.ID, 0, 2)
		require.NoError(t, err)
		page2, err := commentRepo.ListByVideo(ctx, video.ID, 2, 2)
		require.NoError(t, err)
		page3, err := commentRepo.ListByVideo(ctx, video.ID, 4, 2)
		require.NoError(t, err)

		require.Len(t, page1, 2)
		require.Len(t, page2, 2)
		require.Len(t, page3, 1)

		seen := map[string]bool{}
		for _, page := range [][]domain.CommentView{page1, page2, page3} {
			for _, item := range page {
				assert.False(t, seen[item.ID], "comment %s appeared twice", item.ID)
				seen[item.ID] = true
			}
		}
		assert.Len(t, seen, 5)
	})

	t.Run("count is independent of the page slice", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "videos", "users")
		user := createUser(t)
		video := createVideo(t, user.ID)
		other := createVideo(t, user.ID)

		base := time.Now().Add(-time.Hour)
		for i := 0; i < 4; i++ {
			addComment(t, video.ID, user.ID, "c", base.Add(time.Duration(i)*time.Second))
		}
		addComment(t, other.ID, user.ID, "elsewhere", base)

		count, err := commentRepo.CountByVideo(ctx, video.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		items, err := commentRepo.ListByVideo(ctx, video.ID, 0, 2)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("deleted author yields nil owner", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "videos", "users")
		channel := createUser(t)
		author := createUser(t)
		video := createVideo(t, channel.ID)
		addComment(t, video.ID, author.ID, "ghost", time.Now())

		_, err := testDB.Pool.Exec(ctx, "DELETE FROM users WHERE id = $1", author.ID)
		require.NoError(t, err)

		items, err := commentRepo.ListByVideo(ctx, video.ID, 0, 10)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "ghost", items[0].Content)
		assert.Nil(t, items[0].Owner)
	})

	t.Run("update requires ownership", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "videos", "users")
		owner := createUser(t)
		intruder := createUser(t)
		video := createVideo(t, owner.ID)
		c := addComment(t, video.ID, owner.ID, "original", time.Now())

		t.Run("owner succeeds", func(t *testing.T) {
			updated, err := commentRepo.UpdateOwned(ctx, c.ID, owner.ID, "edited")
			require.NoError(t, err)
			assert.Equal(t, "edited", updated.Content)
			assert.Equal(t, c.ID, updated.ID)
		})

		t.Run("non-owner gets merged error", func(t *testing.T) {
			_, err := commentRepo.UpdateOwned(ctx, c.ID, intruder.ID, "hijacked")
			assert.ErrorIs(t, err, domain.ErrNotAuthorizedOrNotFound)
		})

		t.Run("missing comment gets same error", func(t *testing.T) {
			_, err := commentRepo.UpdateOwned(ctx, uuid.New().String(), owner.ID, "nowhere")
			assert.ErrorIs(t, err, domain.ErrNotAuthorizedOrNotFound)
		})
	})

	t.Run("delete requires ownership", func(t *testing.T) {
		testDB.TruncateTables(t, "comments", "videos", "users")
		owner := createUser(t)
		intruder := createUser(t)
		video := createVideo(t, owner.ID)
		c := addComment(t, video.ID, owner.ID, "doomed", time.Now())

		err := commentRepo.DeleteOwned(ctx, c.ID, intruder.ID)
		assert.ErrorIs(t, err, domain.ErrNotAuthorizedOrNotFound)

		require.NoError(t, commentRepo.DeleteOwned(ctx, c.ID, owner.ID))

		err = commentRepo.DeleteOwned(ctx, c.ID, owner.ID)
		assert.ErrorIs(t, err, domain.ErrNotAuthorizedOrNotFound)
	})
}
