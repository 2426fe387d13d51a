package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"inkwell/contexts/publishing/post-service/application"
	"inkwell/contexts/publishing/post-service/domain/entities"
	"inkwell/contexts/publishing/post-service/ports"
	httptransport "inkwell/contexts/publishing/post-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListPostsHandler godoc
// @Summary List posts
// @Description Returns posts with an on/off published filter and pagination.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param published query string true "Published filter (on|off)"
// @Param limit query int true "Page size (> 0)"
// @Param skip query int false "Offset, defaults to 0"
// @Success 200 {array} httptransport.PostDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /posts [get]
func (h Handler) ListPostsHandler(ctx context.Context, published string, limit int, skip int) ([]httptransport.PostDTO, error) {
	items, err := h.Service.List(ctx, published, limit, skip)
	if err != nil {
		return nil, err
	}

	posts := make([]httptransport.PostDTO, 0, len(items))
	for _, item := range items {
		posts = append(posts, mapPost(item))
	}
	return posts, nil
}

// CreatePostHandler godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreatePostRequest true "Post payload"
// @Success 201 {object} httptransport.PostDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /posts [post]
func (h Handler) CreatePostHandler(ctx context.Context, req httptransport.CreatePostRequest) (httptransport.PostDTO, error) {
	post, err := h.Service.Create(ctx, ports.CreatePostInput{
		Title:       req.Title,
		Content:     req.Content,
		Published:   req.Published,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		application.ResolveLogger(h.Logger).Error("create post request failed",
			"event", "http_create_post_failed",
			"module", "publishing/post-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.PostDTO{}, err
	}
	return mapPost(post), nil
}

// GetPostHandler godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post id"
// @Success 200 {object} httptransport.PostDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{id} [get]
func (h Handler) GetPostHandler(ctx context.Context, id int64) (httptransport.PostDTO, error) {
	post, err := h.Service.Get(ctx, id)
	if err != nil {
		return httptransport.PostDTO{}, err
	}
	return mapPost(post), nil
}

// UpdatePostHandler godoc
// @Summary Partially update a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post id"
// @Param request body httptransport.UpdatePostRequest true "Fields to change"
// @Success 200 {object} httptransport.PostDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{id} [patch]
func (h Handler) UpdatePostHandler(ctx context.Context, id int64, req httptransport.UpdatePostRequest) (httptransport.PostDTO, error) {
	post, err := h.Service.Update(ctx, id, ports.UpdatePostInput{
		Title:       req.Title,
		Content:     req.Content,
		Published:   req.Published,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return httptransport.PostDTO{}, err
	}
	return mapPost(post), nil
}

// DeletePostHandler godoc
// @Summary Delete a post by id
// @Tags posts
// @Security BearerAuth
// @Param id path int true "Post id"
// @Success 204
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /posts/{id} [delete]
func (h Handler) DeletePostHandler(ctx context.Context, id int64) error {
	return h.Service.Delete(ctx, id)
}

func mapPost(post entities.Post) httptransport.PostDTO {
	output := httptransport.PostDTO{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
	}
	if post.PublishedAt != nil {
		output.PublishedAt = post.PublishedAt.UTC().Format(time.RFC3339)
	}
	return output
}
