package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain"
)

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

const userColumns = `id, username, full_name, email, password_hash, avatar_url, cover_image_url, refresh_token, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.FullName, &u.Email, &u.PasswordHash,
		&u.AvatarURL, &u.CoverImageURL, &u.RefreshToken, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// Insert stores a new user. Username and email collisions surface as
// domain.ErrConflict.
func (r *PostgresUserRepository) Insert(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, username, full_name, email, password_hash, avatar_url, cover_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`, u.ID, u.Username, u.FullName, u.Email, u.PasswordHash, u.AvatarURL, u.CoverImageURL, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username or email taken", domain.ErrConflict)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID fetches a user by ID.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByIdentifier fetches a user by username or email.
func (r *PostgresUserRepository) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = $1 OR email = $1
	`, identifier)
	return scanUser(row)
}

// UpdateRefreshToken stores (or clears, when token is nil) the user's
// persisted refresh token.
func (r *PostgresUserRepository) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET refresh_token = $2, updated_at = NOW() WHERE id = $1
	`, id, token)
	if err != nil {
		return fmt.Errorf("update refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the user's password hash.
func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateAccount replaces the user's full name and email.
func (r *PostgresUserRepository) UpdateAccount(ctx context.Context, id, fullName, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET full_name = $2, email = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, id, fullName, email)
	u, err := scanUser(row)
	if err != nil && isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: email taken", domain.ErrConflict)
	}
	return u, err
}

// UpdateAvatar replaces the user's avatar URL.
func (r *PostgresUserRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET avatar_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, id, avatarURL)
	return scanUser(row)
}

// UpdateCoverImage replaces the user's cover image URL.
func (r *PostgresUserRepository) UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE users SET cover_image_url = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, id, coverImageURL)
	return scanUser(row)
}

// ChannelProfile fetches a user's channel page by username, with
// subscription counts and, when viewerID is non-empty, whether that viewer
// subscribes to the channel.
func (r *PostgresUserRepository) ChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	var p domain.ChannelProfile
	err := r.pool.QueryRow(ctx, `
		SELECT u.id, u.username, u.full_name, u.email, u.avatar_url, u.cover_image_url,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.id),
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.id),
		       EXISTS (
		           SELECT 1 FROM subscriptions s
		           WHERE s.channel_id = u.id AND s.subscriber_id = NULLIF($2, '')::uuid
		       )
		FROM users u
		WHERE u.username = $1
	`, username, viewerID).Scan(
		&p.ID, &p.Username, &p.FullName, &p.Email, &p.AvatarURL, &p.CoverImageURL,
		&p.SubscriberCount, &p.SubscribedToCount, &p.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: channel does not exist", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query channel profile: %w", err)
	}
	return &p, nil
}

// RecordWatch upserts a watch history entry; rewatching refreshes the
// timestamp instead of adding a duplicate.
func (r *PostgresUserRepository) RecordWatch(ctx context.Context, userID, videoID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO watch_history (user_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = NOW()
	`, userID, videoID)
	if err != nil {
		return fmt.Errorf("record watch: %w", err)
	}
	return nil
}

// WatchHistory returns the user's watched videos, most recent first, each
// with the channel joined in.
func (r *PostgresUserRepository) WatchHistory(ctx context.Context, userID string) ([]domain.VideoView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.title, v.description, v.video_url, v.thumbnail_url, v.duration, v.views, v.created_at,
		       o.id, o.username, o.avatar_url
		FROM watch_history h
		JOIN videos v ON v.id = h.video_id
		LEFT JOIN users o ON o.id = v.owner_id
		WHERE h.user_id = $1
		ORDER BY h.watched_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query watch history: %w", err)
	}
	defer rows.Close()

	return scanVideoViews(rows)
}
