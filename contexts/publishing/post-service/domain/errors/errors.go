package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrPostNotFound   = errors.New("post not found")
)
