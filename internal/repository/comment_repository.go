package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Insert stores a new comment. A foreign-key violation on the video
// reference surfaces as domain.ErrNotFound.
func (r *PostgresCommentRepository) Insert(ctx context.Context, c *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, video_id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`, c.ID, c.VideoID, c.OwnerID, c.Content, c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: video not found", domain.ErrNotFound)
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByVideo returns one page of a video's comments, newest first, each
// with the author joined in as a public profile. A comment whose author no
// longer exists is returned with a nil owner.
func (r *PostgresCommentRepository) ListByVideo(ctx context.Context, videoID string, offset, limit int) ([]domain.CommentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.content, c.created_at, u.id, u.username, u.avatar_url
		FROM comments c
		LEFT JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		OFFSET $2 LIMIT $3
	`, videoID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CommentView, 0, limit)
	for rows.Next() {
		var (
			view      domain.CommentView
			ownerID   *string
			username  *string
			avatarURL *string
		)
		if err := rows.Scan(&view.ID, &view.Content, &view.CreatedAt, &ownerID, &username, &avatarURL); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		if ownerID != nil {
			view.Owner = &domain.UserProfile{
				ID:        *ownerID,
				Username:  *username,
				AvatarURL: *avatarURL,
			}
		}
		items = append(items, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}
	return items, nil
}

// CountByVideo counts all comments on a video, independent of any page slice.
func (r *PostgresCommentRepository) CountByVideo(ctx context.Context, videoID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM comments WHERE video_id = $1
	`, videoID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

// UpdateOwned replaces a comment's content if and only if the comment exists
// and is owned by ownerID. A missing comment and a comment owned by someone
// else produce the same domain.ErrNotAuthorizedOrNotFound.
func (r *PostgresCommentRepository) UpdateOwned(ctx context.Context, commentID, ownerID, content string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, `
		UPDATE comments
		SET content = $3, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, video_id, owner_id, content, created_at, updated_at
	`, commentID, ownerID, content).Scan(
		&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotAuthorizedOrNotFound
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return &c, nil
}

// DeleteOwned removes a comment under the same ownership condition as
// UpdateOwned, with the same merged failure mode.
func (r *PostgresCommentRepository) DeleteOwned(ctx context.Context, commentID, ownerID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM comments WHERE id = $1 AND owner_id = $2
	`, commentID, ownerID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotAuthorizedOrNotFound
	}
	return nil
}
