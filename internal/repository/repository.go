package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fitography/internal/models"
)

// FeedRepository persists the full post collection as one durable slot.
// LoadPosts returns (nil, nil) when nothing has been persisted yet; a
// malformed slot is an error so the caller can fall back to seeds.
type FeedRepository interface {
	LoadPosts(ctx context.Context) ([]models.Post, error)
	SavePosts(ctx context.Context, posts []models.Post) error
}

type Repository struct {
	Feed FeedRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Feed: NewFeedRepository(db),
	}
}
