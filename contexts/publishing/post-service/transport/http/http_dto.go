package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PostDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	PublishedAt string `json:"published_at,omitempty"`
	Published   bool   `json:"published"`
}

type CreatePostRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Published   bool       `json:"published"`
}

// UpdatePostRequest is a partial patch: absent fields stay untouched.
type UpdatePostRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	PublishedAt *time.Time `json:"published_at"`
	Published   *bool      `json:"published"`
}
