package app

import (
	"context"
	"log"

	"fitography/internal/config"
	"fitography/internal/database"
	"fitography/internal/models"
	"fitography/internal/repository"
	"fitography/internal/seed"
	"fitography/internal/service"
	"fitography/internal/store"
)

func App(cfg *config.Config) (*database.DB, *store.FeedStore, *service.Service) {
	// local storage
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to open local storage: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	seedPosts := []models.Post{}
	if cfg.SeedOnEmpty {
		seedPosts = seed.Posts()
	}

	feed := store.NewFeedStore(context.Background(), repo.Feed, seedPosts)

	services := service.NewService(feed, cfg)

	return db, feed, services
}
