package system

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Clock is the default runtime clock implementation.
type Clock struct{}

func (Clock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator creates collision-resistant token ids (jti).
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
