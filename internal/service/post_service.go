package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"fitography/internal/config"
	"fitography/internal/models"
	"fitography/internal/store"
)

type PostService interface {
	CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
}

type postService struct {
	feed store.Feed
	cfg  *config.Config
}

func NewPostService(feed store.Feed, cfg *config.Config) PostService {
	return &postService{
		feed: feed,
		cfg:  cfg,
	}
}

// CreatePost encodes the uploaded image as a self-contained data URL,
// assembles the post and commits it to the feed. A failed file read fails
// the whole operation and leaves the feed untouched.
func (p *postService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	src, err := encodeDataURL(req.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	user := strings.TrimSpace(req.User)
	if user == "" {
		user = models.DefaultUser
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	post := models.Post{
		ID:        uuid.New().String(),
		Src:       src,
		Caption:   req.Caption,
		Tags:      tags,
		User:      user,
		CreatedAt: time.Now().UnixMilli(),
	}

	p.feed.Prepend(ctx, post)

	return &post, nil
}

// encodeDataURL reads the full file and encodes it so the src field can be
// handed straight to an image element without a network round trip. No file
// resolves to an empty string rather than an error.
func encodeDataURL(file io.Reader) (string, error) {
	if file == nil {
		return "", nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	contentType := mimetype.Detect(data)

	return fmt.Sprintf("data:%s;base64,%s",
		contentType.String(),
		base64.StdEncoding.EncodeToString(data),
	), nil
}
