package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fitography/internal/models"
	"fitography/internal/query"
)

type PostsGetResponse struct {
	Posts []models.Post `json:"posts"`
	Total int           `json:"total"`
}

// Posts serves the feed collection: GET lists the (optionally filtered)
// feed, POST creates a post from the upload form.
func (h *Handlers) Posts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetPosts(w, r)
	case http.MethodPost:
		h.CreatePost(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// GetPosts returns the current feed filtered by the live query/tag state:
// ?q= is the free-text query ("@handle" targets the user field), ?tags= the
// selected tag set (repeatable, comma-separated values allowed). No params
// means the full feed in store order.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query().Get("q")
	selected := splitTags(r.URL.Query()["tags"])

	posts := query.Filter(h.Feed.Posts(), q, selected)

	response := PostsGetResponse{
		Posts: posts,
		Total: len(posts),
	}

	writeSuccess(w, response, http.StatusOK)
}

type createPostForm struct {
	Caption string   `validate:"max=500"`
	User    string   `validate:"max=64"`
	Tags    []string `validate:"max=20,dive,max=40"`
}

// CreatePost handles the multipart upload form: {file, caption, tags, user}.
// An encode failure is surfaced so the form can show a retry message; the
// feed is left unmodified in that case.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid upload form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			WriteError(w, "An image file is required", http.StatusBadRequest)
			return
		}
		WriteError(w, "Invalid image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	form := createPostForm{
		Caption: r.FormValue("caption"),
		User:    r.FormValue("user"),
		Tags:    splitTags(r.Form["tags"]),
	}

	if err := h.Validate.Struct(form); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := models.CreatePostRequest{
		FileName: header.Filename,
		File:     file,
		Caption:  form.Caption,
		Tags:     form.Tags,
		User:     form.User,
	}

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		WriteError(w, "Could not save your fit, please try again", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

// PostByID serves a single post: GET fetches, DELETE removes.
func (h *Handlers) PostByID(w http.ResponseWriter, r *http.Request) {
	postID := strings.TrimPrefix(r.URL.Path, "/api/posts/")
	if postID == "" || strings.Contains(postID, "/") {
		WriteError(w, "Invalid URL", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		post, ok := h.Feed.GetByID(postID)
		if !ok {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		writeSuccess(w, post, http.StatusOK)
	case http.MethodDelete:
		if !h.Feed.DeleteByID(r.Context(), postID) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		writeSuccess(w, map[string]string{"deleted": postID}, http.StatusOK)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// splitTags accepts both repeated and comma-separated tag params and drops
// duplicates, which is the upload form's job rather than the store's.
func splitTags(values []string) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, value := range values {
		for _, t := range strings.Split(value, ",") {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if _, dup := seen[strings.ToLower(t)]; dup {
				continue
			}
			seen[strings.ToLower(t)] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}
