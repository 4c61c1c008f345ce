package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fitography/internal/models"
)

// feedSlotKey names the storage slot holding the serialized feed. Bump the
// version suffix whenever the record shape changes incompatibly, so stale
// or accidentally-empty data from an old format never masks the seeds.
const feedSlotKey = "fitography_posts_v3"

type FeedRepositoryImpl struct {
	db *sqlx.DB
}

func NewFeedRepository(db *sqlx.DB) *FeedRepositoryImpl {
	return &FeedRepositoryImpl{db: db}
}

func (r *FeedRepositoryImpl) LoadPosts(ctx context.Context) ([]models.Post, error) {
	query := `SELECT value FROM slots WHERE key = ?`

	var raw string
	err := r.db.GetContext(ctx, &raw, query, feedSlotKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read feed slot: %w", err)
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, fmt.Errorf("failed to decode feed slot: %w", err)
	}

	return posts, nil
}

func (r *FeedRepositoryImpl) SavePosts(ctx context.Context, posts []models.Post) error {
	query := `INSERT INTO slots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to encode feed: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, feedSlotKey, string(raw))
	if err != nil {
		return fmt.Errorf("failed to write feed slot: %w", err)
	}

	return nil
}
