package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain"
)

// PostgresLikeRepository implements LikeRepository using PostgreSQL.
type PostgresLikeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository.
func NewPostgresLikeRepository(pool *pgxpool.Pool) *PostgresLikeRepository {
	return &PostgresLikeRepository{pool: pool}
}

// toggle deletes an existing like on the target column or inserts one when
// none exists. It reports whether the target ends up liked.
func (r *PostgresLikeRepository) toggle(ctx context.Context, column, userID, targetID string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM likes WHERE liked_by = $1 AND %s = $2`, column),
		userID, targetID)
	if err != nil {
		return false, fmt.Errorf("remove like: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO likes (id, liked_by, %s, created_at) VALUES ($1, $2, $3, $4)`, column),
		uuid.New().String(), userID, targetID, time.Now())
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: %s not found", domain.ErrNotFound, column)
		}
		if isUniqueViolation(err) {
			// Lost a race with a concurrent like; the target is liked either way.
			return true, nil
		}
		return false, fmt.Errorf("insert like: %w", err)
	}
	return true, nil
}

// ToggleVideo toggles the user's like on a video.
func (r *PostgresLikeRepository) ToggleVideo(ctx context.Context, userID, videoID string) (bool, error) {
	return r.toggle(ctx, "video_id", userID, videoID)
}

// ToggleComment toggles the user's like on a comment.
func (r *PostgresLikeRepository) ToggleComment(ctx context.Context, userID, commentID string) (bool, error) {
	return r.toggle(ctx, "comment_id", userID, commentID)
}

// ToggleTweet toggles the user's like on a tweet.
func (r *PostgresLikeRepository) ToggleTweet(ctx context.Context, userID, tweetID string) (bool, error) {
	return r.toggle(ctx, "tweet_id", userID, tweetID)
}

// LikedVideos returns the videos the user has liked, most recently liked
// first, with the channel joined in.
func (r *PostgresLikeRepository) LikedVideos(ctx context.Context, userID string) ([]domain.VideoView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.title, v.description, v.video_url, v.thumbnail_url, v.duration, v.views, v.created_at,
		       o.id, o.username, o.avatar_url
		FROM likes l
		JOIN videos v ON v.id = l.video_id
		LEFT JOIN users o ON o.id = v.owner_id
		WHERE l.liked_by = $1 AND l.video_id IS NOT NULL
		ORDER BY l.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query liked videos: %w", err)
	}
	defer rows.Close()

	return scanVideoViews(rows)
}
