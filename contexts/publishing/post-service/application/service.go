package application

import (
	"context"
	"log/slog"
	"strings"

	"inkwell/contexts/publishing/post-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/post-service/domain/errors"
	"inkwell/contexts/publishing/post-service/ports"
)

type Service struct {
	Repo   ports.PostRepository
	Logger *slog.Logger
}

// List returns posts matching the published filter token. Unrecognized
// tokens mean "no filter" rather than an error.
func (s Service) List(ctx context.Context, published string, limit int, skip int) ([]entities.Post, error) {
	if limit <= 0 || skip < 0 {
		return nil, domainerrors.ErrInvalidRequest
	}

	items, err := s.Repo.List(ctx, ports.ListQuery{
		Published: normalizePublishedFilter(published),
		Limit:     limit,
		Skip:      skip,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Post{}
	}
	return items, nil
}

// Create inserts the post and reads it back by the assigned id, so the
// caller always sees authoritative store state rather than its own input.
func (s Service) Create(ctx context.Context, input ports.CreatePostInput) (entities.Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return entities.Post{}, domainerrors.ErrInvalidRequest
	}

	id, err := s.Repo.Create(ctx, input)
	if err != nil {
		return entities.Post{}, err
	}

	ResolveLogger(s.Logger).Info("post created",
		"event", "post_created",
		"module", "publishing/post-service",
		"layer", "application",
		"post_id", id,
	)
	return s.Repo.GetByID(ctx, id)
}

func (s Service) Get(ctx context.Context, id int64) (entities.Post, error) {
	return s.Repo.GetByID(ctx, id)
}

// Update re-checks existence, applies only the supplied fields and returns
// the re-read entity. An empty patch skips the write entirely. The
// check-then-act window is an accepted race, not a transactional guarantee.
func (s Service) Update(ctx context.Context, id int64, input ports.UpdatePostInput) (entities.Post, error) {
	total, err := s.Repo.CountByID(ctx, id)
	if err != nil {
		return entities.Post{}, err
	}
	if total == 0 {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}

	if !input.IsEmpty() {
		if err := s.Repo.Update(ctx, id, input); err != nil {
			return entities.Post{}, err
		}
	}
	return s.Repo.GetByID(ctx, id)
}

// Delete checks existence, then issues the delete. Same accepted race as
// Update.
func (s Service) Delete(ctx context.Context, id int64) error {
	total, err := s.Repo.CountByID(ctx, id)
	if err != nil {
		return err
	}
	if total == 0 {
		return domainerrors.ErrPostNotFound
	}

	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	ResolveLogger(s.Logger).Info("post deleted",
		"event", "post_deleted",
		"module", "publishing/post-service",
		"layer", "application",
		"post_id", id,
	)
	return nil
}

func normalizePublishedFilter(token string) *bool {
	value := false
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "true", "1", "on", "yes":
		value = true
	case "false", "0", "off", "no":
	default:
		return nil
	}
	return &value
}
