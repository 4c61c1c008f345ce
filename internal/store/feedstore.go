package store

import (
	"context"
	"log"
	"sync"

	"fitography/internal/models"
	"fitography/internal/repository"
)

// Feed is the read/write surface consumers are handed; FeedStore is the
// only implementation outside of tests.
type Feed interface {
	Posts() []models.Post
	GetByID(id string) (models.Post, bool)
	Prepend(ctx context.Context, post models.Post)
	DeleteByID(ctx context.Context, id string) bool
	Subscribe() chan struct{}
	Unsubscribe(ch chan struct{})
}

// FeedStore is the single source of truth for the post collection. It is
// the sole writer: every mutation happens under the mutex and is followed
// by a full-collection persist. Consumers get copies and change
// notifications, never the backing slice.
type FeedStore struct {
	repo repository.FeedRepository

	mu    sync.Mutex
	posts []models.Post
	subs  map[chan struct{}]struct{}
}

// NewFeedStore bootstraps from persisted state when a non-empty collection
// loads cleanly, and from seedPosts otherwise (no slot, decode failure, or
// an empty collection).
func NewFeedStore(ctx context.Context, repo repository.FeedRepository, seedPosts []models.Post) *FeedStore {
	posts, err := repo.LoadPosts(ctx)
	if err != nil {
		log.Printf("Warning: failed to load persisted feed, using seeds: %v", err)
		posts = nil
	}
	if len(posts) == 0 {
		posts = seedPosts
	}

	// Tags must always be a non-nil slice for every reader.
	for i := range posts {
		if posts[i].Tags == nil {
			posts[i].Tags = []string{}
		}
	}

	return &FeedStore{
		repo:  repo,
		posts: posts,
		subs:  make(map[chan struct{}]struct{}),
	}
}

// Posts returns the collection in reverse-chronological insertion order:
// freshly created posts first, seed posts at the tail in authored order.
func (s *FeedStore) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *FeedStore) GetByID(id string) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Prepend commits a new post at the head of the collection. Concurrent
// calls land in commit order. Persistence failures do not roll back the
// in-memory state; durability is lost silently for the session.
func (s *FeedStore) Prepend(ctx context.Context, post models.Post) {
	if post.Tags == nil {
		post.Tags = []string{}
	}

	s.mu.Lock()
	s.posts = append([]models.Post{post}, s.posts...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.notify()
}

// DeleteByID removes a post and reports whether one was removed. A miss is
// a plain not-found, not an error.
func (s *FeedStore) DeleteByID(ctx context.Context, id string) bool {
	s.mu.Lock()
	removed := false
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		s.persistLocked(ctx)
	}
	s.mu.Unlock()

	if removed {
		s.notify()
	}
	return removed
}

// Subscribe registers a change-notification channel. Notifications are
// coalesced: a slow consumer sees at least one signal, not one per change.
func (s *FeedStore) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	return ch
}

func (s *FeedStore) Unsubscribe(ch chan struct{}) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

func (s *FeedStore) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *FeedStore) persistLocked(ctx context.Context) {
	if err := s.repo.SavePosts(ctx, s.posts); err != nil {
		log.Printf("Warning: failed to persist feed: %v", err)
	}
}
