package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"videotube/internal/domain"
)

// PostgresVideoRepository implements VideoRepository using PostgreSQL.
type PostgresVideoRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVideoRepository creates a new PostgresVideoRepository.
func NewPostgresVideoRepository(pool *pgxpool.Pool) *PostgresVideoRepository {
	return &PostgresVideoRepository{pool: pool}
}

const videoColumns = `id, owner_id, title, description, video_url, thumbnail_url, duration, views, is_published, created_at, updated_at`

func scanVideo(row pgx.Row) (*domain.Video, error) {
	var v domain.Video
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
		&v.Duration, &v.Views, &v.Published, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotAuthorizedOrNotFound
		}
		return nil, fmt.Errorf("scan video: %w", err)
	}
	return &v, nil
}

// scanVideoViews reads VideoView rows produced by queries selecting the
// video columns followed by the nullable owner profile columns.
func scanVideoViews(rows pgx.Rows) ([]domain.VideoView, error) {
	var views []domain.VideoView
	for rows.Next() {
		var (
			view      domain.VideoView
			ownerID   *string
			username  *string
			avatarURL *string
		)
		if err := rows.Scan(
			&view.ID, &view.Title, &view.Description, &view.VideoURL, &view.ThumbnailURL,
			&view.Duration, &view.Views, &view.CreatedAt, &ownerID, &username, &avatarURL,
		); err != nil {
			return nil, fmt.Errorf("scan video view: %w", err)
		}
		if ownerID != nil {
			view.Owner = &domain.UserProfile{ID: *ownerID, Username: *username, AvatarURL: *avatarURL}
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read video views: %w", err)
	}
	return views, nil
}

// Insert stores a new video row.
func (r *PostgresVideoRepository) Insert(ctx context.Context, v *domain.Video) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO videos (id, owner_id, title, description, video_url, thumbnail_url, duration, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`, v.ID, v.OwnerID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.Duration, v.Published, v.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: owner not found", domain.ErrNotFound)
		}
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

// GetDetail fetches the watch-page projection of a video: the row itself,
// the channel profile, and the engagement counts gathered around it.
func (r *PostgresVideoRepository) GetDetail(ctx context.Context, id string) (*domain.VideoDetail, error) {
	var (
		d         domain.VideoDetail
		ownerID   *string
		username  *string
		avatarURL *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.thumbnail_url,
		       v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		       o.id, o.username, o.avatar_url,
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = v.owner_id),
		       (SELECT COUNT(*) FROM likes l WHERE l.video_id = v.id),
		       (SELECT COUNT(*) FROM comments c WHERE c.video_id = v.id)
		FROM videos v
		LEFT JOIN users o ON o.id = v.owner_id
		WHERE v.id = $1
	`, id).Scan(
		&d.ID, &d.OwnerID, &d.Title, &d.Description, &d.VideoURL, &d.ThumbnailURL,
		&d.Duration, &d.Views, &d.Published, &d.CreatedAt, &d.UpdatedAt,
		&ownerID, &username, &avatarURL,
		&d.SubscriberCount, &d.LikeCount, &d.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: video not found", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query video detail: %w", err)
	}
	if ownerID != nil {
		d.Channel = &domain.UserProfile{ID: *ownerID, Username: *username, AvatarURL: *avatarURL}
	}
	return &d, nil
}

// IncrementViews bumps the view counter by one.
func (r *PostgresVideoRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// GetOwned fetches a video only when it is owned by ownerID; a missing video
// and one owned by someone else are indistinguishable.
func (r *PostgresVideoRepository) GetOwned(ctx context.Context, id, ownerID string) (*domain.Video, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+videoColumns+` FROM videos WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	return scanVideo(row)
}

// Delete removes a video under the ownership condition of GetOwned.
func (r *PostgresVideoRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM videos WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotAuthorizedOrNotFound
	}
	return nil
}

// UpdateThumbnail replaces the thumbnail URL, owner-guarded.
func (r *PostgresVideoRepository) UpdateThumbnail(ctx context.Context, id, ownerID, thumbnailURL string) (*domain.Video, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE videos SET thumbnail_url = $3, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING `+videoColumns, id, ownerID, thumbnailURL)
	return scanVideo(row)
}

// SetPublished flips the publish flag, owner-guarded.
func (r *PostgresVideoRepository) SetPublished(ctx context.Context, id, ownerID string, published bool) (*domain.Video, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE videos SET is_published = $3, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING `+videoColumns, id, ownerID, published)
	return scanVideo(row)
}

// List returns one page of published videos, newest first, with the channel
// joined in.
func (r *PostgresVideoRepository) List(ctx context.Context, offset, limit int) ([]domain.VideoView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.title, v.description, v.video_url, v.thumbnail_url, v.duration, v.views, v.created_at,
		       o.id, o.username, o.avatar_url
		FROM videos v
		LEFT JOIN users o ON o.id = v.owner_id
		WHERE v.is_published
		ORDER BY v.created_at DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}
	defer rows.Close()

	return scanVideoViews(rows)
}

// ListByOwner returns every video a channel owns, published or not, newest
// first.
func (r *PostgresVideoRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Video, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+videoColumns+` FROM videos WHERE owner_id = $1 ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query owned videos: %w", err)
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoURL, &v.ThumbnailURL,
			&v.Duration, &v.Views, &v.Published, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read videos: %w", err)
	}
	return videos, nil
}

// ChannelStats aggregates a channel's dashboard numbers. A channel with no
// videos yields zeros rather than an error.
func (r *PostgresVideoRepository) ChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	var s domain.ChannelStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(v.views), 0),
		       (SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = $1),
		       (SELECT COUNT(*) FROM likes l JOIN videos lv ON lv.id = l.video_id WHERE lv.owner_id = $1)
		FROM videos v
		WHERE v.owner_id = $1
	`, channelID).Scan(&s.TotalVideos, &s.TotalViews, &s.TotalSubscribers, &s.TotalLikes)
	if err != nil {
		return nil, fmt.Errorf("query channel stats: %w", err)
	}
	return &s, nil
}
