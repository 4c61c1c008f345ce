package service

import (
	"fitography/internal/config"
	"fitography/internal/store"
)

type Service struct {
	Post PostService
}

func NewService(feed store.Feed, cfg *config.Config) *Service {
	return &Service{
		Post: NewPostService(feed, cfg),
	}
}
