package errors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrMissingCredentials = errors.New("authorization credentials missing")
	ErrUnsupportedScheme  = errors.New("unsupported authorization scheme")
	ErrUnauthorized       = errors.New("unauthorized")
)
