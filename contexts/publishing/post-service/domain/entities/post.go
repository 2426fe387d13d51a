package entities

import "time"

// Post is a blog content entity. The identifier is assigned exactly once by
// the store at creation; PublishedAt is optional and always UTC when present.
type Post struct {
	ID          int64
	Title       string
	Content     string
	Published   bool
	PublishedAt *time.Time
}
