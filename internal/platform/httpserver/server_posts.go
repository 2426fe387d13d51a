package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	posterrors "inkwell/contexts/publishing/post-service/domain/errors"
	posthttp "inkwell/contexts/publishing/post-service/transport/http"
)

// requireIdentity runs the auth gate. Every post operation calls it before
// touching the store; rejection is uniform so callers cannot tell a missing
// header from a forged or expired token.
func (s *Server) requireIdentity(w http.ResponseWriter, r *http.Request) bool {
	if _, err := s.tokens.Handler.Authenticate(r.Header.Get("Authorization")); err != nil {
		writePostError(w, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
		return false
	}
	return true
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	if !s.requireIdentity(w, r) {
		return
	}

	query := r.URL.Query()
	published := query.Get("published")
	if published != "on" && published != "off" {
		writePostError(w, http.StatusBadRequest, "invalid_published", "published must be on or off")
		return
	}

	limitRaw := query.Get("limit")
	if limitRaw == "" {
		writePostError(w, http.StatusBadRequest, "invalid_limit", "limit is required")
		return
	}
	limit, err := strconv.Atoi(limitRaw)
	if err != nil || limit <= 0 {
		writePostError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
		return
	}

	skip := 0
	if skipRaw := query.Get("skip"); skipRaw != "" {
		skip, err = strconv.Atoi(skipRaw)
		if err != nil || skip < 0 {
			writePostError(w, http.StatusBadRequest, "invalid_skip", "skip must be a non-negative integer")
			return
		}
	}

	resp, err := s.posts.Handler.ListPostsHandler(r.Context(), published, limit, skip)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	if !s.requireIdentity(w, r) {
		return
	}

	var req posthttp.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePostError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.posts.Handler.CreatePostHandler(r.Context(), req)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	if !s.requireIdentity(w, r) {
		return
	}

	id, ok := parsePostID(w, r)
	if !ok {
		return
	}

	resp, err := s.posts.Handler.GetPostHandler(r.Context(), id)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	if !s.requireIdentity(w, r) {
		return
	}

	id, ok := parsePostID(w, r)
	if !ok {
		return
	}

	var req posthttp.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePostError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.posts.Handler.UpdatePostHandler(r.Context(), id, req)
	if err != nil {
		writePostDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if !s.requireIdentity(w, r) {
		return
	}

	id, ok := parsePostID(w, r)
	if !ok {
		return
	}

	if err := s.posts.Handler.DeletePostHandler(r.Context(), id); err != nil {
		writePostDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parsePostID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writePostError(w, http.StatusBadRequest, "invalid_id", "post id must be an integer")
		return 0, false
	}
	return id, true
}

func writePostDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posterrors.ErrPostNotFound):
		writePostError(w, http.StatusNotFound, "post_not_found", err.Error())
	case errors.Is(err, posterrors.ErrInvalidRequest):
		writePostError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writePostError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePostError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, posthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
