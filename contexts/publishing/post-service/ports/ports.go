package ports

import (
	"context"
	"time"

	"inkwell/contexts/publishing/post-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// ListQuery selects posts. Published is tri-state: nil means no filter.
type ListQuery struct {
	Published *bool
	Limit     int
	Skip      int
}

type CreatePostInput struct {
	Title       string
	Content     string
	Published   bool
	PublishedAt *time.Time
}

// UpdatePostInput is a partial patch: nil fields are left untouched.
type UpdatePostInput struct {
	Title       *string
	Content     *string
	Published   *bool
	PublishedAt *time.Time
}

func (u UpdatePostInput) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.Published == nil && u.PublishedAt == nil
}

// PostRepository is the minimal persistence contract the lifecycle service
// depends on. GetByID signals absence with the domain not-found error;
// DeleteByID on a missing id is a store-level no-op.
type PostRepository interface {
	List(ctx context.Context, query ListQuery) ([]entities.Post, error)
	Create(ctx context.Context, input CreatePostInput) (int64, error)
	GetByID(ctx context.Context, id int64) (entities.Post, error)
	Update(ctx context.Context, id int64, input UpdatePostInput) error
	DeleteByID(ctx context.Context, id int64) error
	CountByID(ctx context.Context, id int64) (int64, error)
	PublishDue(ctx context.Context, now time.Time) (int64, error)
}
