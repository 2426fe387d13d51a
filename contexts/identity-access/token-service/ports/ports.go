package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Claims is the signed assertion of caller identity carried by a bearer
// token. It is rebuilt from the token on every request and never persisted.
type Claims struct {
	Issuer    string
	UserID    int64
	IssuedAt  time.Time
	NotBefore time.Time
	ExpiresAt time.Time
	TokenID   string
}

// Identity is the authenticated caller extracted from verified claims.
type Identity struct {
	UserID int64
}
