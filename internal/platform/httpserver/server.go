package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	tokenservice "inkwell/contexts/identity-access/token-service"
	tokenhttp "inkwell/contexts/identity-access/token-service/transport/http"
	postservice "inkwell/contexts/publishing/post-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "inkwell/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	posts  postservice.Module
	tokens tokenservice.Module
}

func New(
	posts postservice.Module,
	tokens tokenservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		posts:  posts,
		tokens: tokens,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
	s.mux.HandleFunc("POST /auth/login", s.handleLogin)

	s.mux.HandleFunc("GET /posts", s.handleListPosts)
	s.mux.HandleFunc("POST /posts", s.handleCreatePost)
	s.mux.HandleFunc("GET /posts/{id}", s.handleGetPost)
	s.mux.HandleFunc("PATCH /posts/{id}", s.handleUpdatePost)
	s.mux.HandleFunc("DELETE /posts/{id}", s.handleDeletePost)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req tokenhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.tokens.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAuthError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, tokenhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
