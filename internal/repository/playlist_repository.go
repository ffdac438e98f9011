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

// PostgresPlaylistRepository implements PlaylistRepository using PostgreSQL.
type PostgresPlaylistRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPlaylistRepository creates a new PostgresPlaylistRepository.
func NewPostgresPlaylistRepository(pool *pgxpool.Pool) *PostgresPlaylistRepository {
	return &PostgresPlaylistRepository{pool: pool}
}

func (r *PostgresPlaylistRepository) Insert(ctx context.Context, playlist *domain.Playlist) error {
	if playlist.ID == "" {
		playlist.ID = uuid.New().String()
	}
	now := time.Now()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now

	_, err := r.pool.Exec(ctx, `
		INSERT INTO playlists (id, owner_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, playlist.ID, playlist.OwnerID, playlist.Name, playlist.Description, playlist.CreatedAt, playlist.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user not found", domain.ErrNotFound)
		}
		return fmt.Errorf("insert playlist: %w", err)
	}
	return nil
}

func (r *PostgresPlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, name, description, created_at, updated_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []domain.Playlist
	for rows.Next() {
		var p domain.Playlist
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read playlists: %w", err)
	}
	return playlists, nil
}

// Get fetches a single playlist with its video ids in insertion order.
func (r *PostgresPlaylistRepository) Get(ctx context.Context, id string) (*domain.Playlist, error) {
	var p domain.Playlist
	err := r.pool.QueryRow(ctx, `
		SELECT p.id, p.owner_id, p.name, p.description, p.created_at, p.updated_at,
			COALESCE(
				(SELECT array_agg(pv.video_id ORDER BY pv.position)
				 FROM playlist_videos pv
				 WHERE pv.playlist_id = p.id),
				'{}'
			)
		FROM playlists p
		WHERE p.id = $1
	`, id).Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt, &p.VideoIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: playlist", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	return &p, nil
}

// AddVideo appends a video to a playlist the owner controls. Adding a video
// that is already present is a no-op.
func (r *PostgresPlaylistRepository) AddVideo(ctx context.Context, playlistID, ownerID, videoID string) error {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO playlist_videos (playlist_id, video_id, position, added_at)
		SELECT p.id, $3,
			COALESCE((SELECT MAX(pv.position) FROM playlist_videos pv WHERE pv.playlist_id = p.id), 0) + 1,
			$4
		FROM playlists p
		WHERE p.id = $1 AND p.owner_id = $2
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`, playlistID, ownerID, videoID, time.Now())
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: video not found", domain.ErrNotFound)
		}
		return fmt.Errorf("add playlist video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the playlist is missing or owned by someone else, or the
		// video was already in it. Distinguish so duplicates stay silent.
		var exists bool
		err := r.pool.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM playlists WHERE id = $1 AND owner_id = $2)
		`, playlistID, ownerID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check playlist owner: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: playlist", domain.ErrNotAuthorizedOrNotFound)
		}
	}
	return nil
}

func (r *PostgresPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, ownerID, videoID string) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM playlist_videos pv
		USING playlists p
		WHERE pv.playlist_id = p.id
		  AND p.id = $1 AND p.owner_id = $2 AND pv.video_id = $3
	`, playlistID, ownerID, videoID)
	if err != nil {
		return fmt.Errorf("remove playlist video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: playlist or video", domain.ErrNotAuthorizedOrNotFound)
	}
	return nil
}
