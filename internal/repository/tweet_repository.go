package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain"
)

// PostgresTweetRepository implements TweetRepository using PostgreSQL.
type PostgresTweetRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTweetRepository creates a new PostgresTweetRepository.
func NewPostgresTweetRepository(pool *pgxpool.Pool) *PostgresTweetRepository {
	return &PostgresTweetRepository{pool: pool}
}

func (r *PostgresTweetRepository) Insert(ctx context.Context, tweet *domain.Tweet) error {
	if tweet.ID == "" {
		tweet.ID = uuid.New().String()
	}
	now := time.Now()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `
		INSERT INTO tweets (id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, tweet.ID, tweet.OwnerID, tweet.Content, tweet.CreatedAt, tweet.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}
		return fmt.Errorf("insert tweet: %w", err)
	}
	return nil
}

func (r *PostgresTweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tweet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query tweets: %w", err)
	}
	defer rows.Close()

	var tweets []domain.Tweet
	for rows.Next() {
		var t domain.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tweet: %w", err)
		}
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read tweets: %w", err)
	}
	return tweets, nil
}

// UpdateOwned updates a tweet's content only when it belongs to ownerID. A
// zero-row update cannot distinguish a missing tweet from someone else's.
func (r *PostgresTweetRepository) UpdateOwned(ctx context.Context, id, ownerID, content string) (*domain.Tweet, error) {
	var t domain.Tweet
	err := r.pool.QueryRow(ctx, `
		UPDATE tweets
		SET content = $3, updated_at = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, content, created_at, updated_at
	`, id, ownerID, content, time.Now()).Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: tweet", domain.ErrNotAuthorizedOrNotFound)
		}
		return nil, fmt.Errorf("update tweet: %w", err)
	}
	return &t, nil
}

// DeleteOwned removes a tweet only when it belongs to ownerID. Zero rows
// surfaces as not found regardless of whether the tweet exists.
func (r *PostgresTweetRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM tweets WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: tweet not found or not owned", domain.ErrNotFound)
	}
	return nil
}
