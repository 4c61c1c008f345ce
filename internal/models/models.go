package models

import "io"

// Post is a single shared-outfit record. Src is the canonical image field:
// either a bundled asset path (seed posts) or a data URL produced at upload
// time. CreatedAt is epoch milliseconds, matching the persisted layout.
type Post struct {
	ID        string   `json:"id" db:"id"`
	Src       string   `json:"src" db:"src"`
	Caption   string   `json:"caption" db:"caption"`
	Tags      []string `json:"tags" db:"-"`
	User      string   `json:"user" db:"user"`
	CreatedAt int64    `json:"createdAt" db:"created_at"`
}

// DefaultUser is the handle applied when an upload omits one.
const DefaultUser = "guest"

type CreatePostRequest struct {
	FileName string
	File     io.Reader
	Caption  string
	Tags     []string
	User     string
}
