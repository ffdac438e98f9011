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

func TestPostgresTweetRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	userRepo := repository.NewPostgresUserRepository(testDB.Pool)
	tweetRepo := repository.NewPostgresTweetRepository(testDB.Pool)
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

	t.Run("list returns own tweets newest first", func(t *testing.T) {
		testDB.TruncateTables(t, "tweets", "users")
		user := createUser(t)
		other := createUser(t)

		for _, content := range []string{"one", "two", "three"} {
			require.NoError(t, tweetRepo.Insert(ctx, &domain.Tweet{OwnerID: user.ID, Content: content}))
			time.Sleep(5 * time.Millisecond)
		}
		require.NoError(t, tweetRepo.Insert(ctx, &domain.Tweet{OwnerID: other.ID, Content: "elsewhere"}))

		tweets, err := tweetRepo.ListByOwner(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, tweets, 3)
		assert.Equal(t, "three", tweets[0].Content)
		assert.Equal(t, "one", tweets[2].Content)
	})

	t.Run("update is owner-guarded with a merged failure", func(t *testing.T) {
		testDB.TruncateTables(t, "tweets", "users")
		owner := createUser(t)
		intruder := createUser(t)

		tweet := &domain.Tweet{OwnerID: owner.ID, Content: "original"}
		require.NoError(t, tweetRepo.Insert(ctx, tweet))

		_, err := tweetRepo.UpdateOwned(ctx, tweet.ID, intruder.ID, "hijacked")
		assert.ErrorIs(t, err, domain.ErrNotAuthorizedOrNotFound)

		updated, err := tweetRepo.UpdateOwned(ctx, tweet.ID, owner.ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", updated.Content)
	})

	t.Run("delete of a missing or foreign tweet is not found", func(t *testing.T) {
		testDB.TruncateTables(t, "tweets", "users")
		owner := createUser(t)
		intruder := createUser(t)

		tweet := &domain.Tweet{OwnerID: owner.ID, Content: "doomed"}
		require.NoError(t, tweetRepo.Insert(ctx, tweet))

		assert.ErrorIs(t, tweetRepo.DeleteOwned(ctx, tweet.ID, intruder.ID), domain.ErrNotFound)
		require.NoError(t, tweetRepo.DeleteOwned(ctx, tweet.ID, owner.ID))
		assert.ErrorIs(t, tweetRepo.DeleteOwned(ctx, tweet.ID, owner.ID), domain.ErrNotFound)
	})
}
