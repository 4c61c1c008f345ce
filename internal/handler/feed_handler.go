package handlers

import (
	"net/http"
	"time"

	"fitography/internal/query"
)

type TagsResponse struct {
	Tags []query.TagCount `json:"tags"`
}

// GetTags returns the distinct tags ranked by how often they appear across
// the feed, for rendering the tag chips.
func (h *Handlers) GetTags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeSuccess(w, TagsResponse{Tags: query.RankTags(h.Feed.Posts())}, http.StatusOK)
}

const feedPollTimeout = 25 * time.Second

type FeedEventResponse struct {
	Changed bool `json:"changed"`
}

// FeedEvents is the change-notification contract for the rendering layer:
// a long poll that resolves true when the feed changes, false on timeout.
func (h *Handlers) FeedEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ch := h.Feed.Subscribe()
	defer h.Feed.Unsubscribe(ch)

	select {
	case <-ch:
		writeSuccess(w, FeedEventResponse{Changed: true}, http.StatusOK)
	case <-time.After(feedPollTimeout):
		writeSuccess(w, FeedEventResponse{Changed: false}, http.StatusOK)
	case <-r.Context().Done():
	}
}
