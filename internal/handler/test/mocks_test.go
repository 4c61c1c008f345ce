package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fitography/internal/models"
)

type MockFeed struct {
	mock.Mock
}

func (m *MockFeed) Posts() []models.Post {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Post)
}

func (m *MockFeed) GetByID(id string) (models.Post, bool) {
	args := m.Called(id)
	return args.Get(0).(models.Post), args.Bool(1)
}

func (m *MockFeed) Prepend(ctx context.Context, post models.Post) {
	m.Called(ctx, post)
}

func (m *MockFeed) DeleteByID(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockFeed) Subscribe() chan struct{} {
	args := m.Called()
	return args.Get(0).(chan struct{})
}

func (m *MockFeed) Unsubscribe(ch chan struct{}) {
	m.Called(ch)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}
