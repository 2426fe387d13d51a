package httpadapter

import (
	"context"
	"log/slog"

	"inkwell/contexts/identity-access/token-service/application"
	"inkwell/contexts/identity-access/token-service/ports"
	httptransport "inkwell/contexts/identity-access/token-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// LoginHandler godoc
// @Summary Issue an access token
// @Description Signs a 30-minute bearer token for the given user id.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body httptransport.LoginRequest true "Login payload"
// @Success 200 {object} httptransport.LoginResponse
// @Failure 422 {object} httptransport.ErrorResponse
// @Router /auth/login [post]
func (h Handler) LoginHandler(ctx context.Context, req httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	token, err := h.Service.Issue(ctx, req.UserID)
	if err != nil {
		application.ResolveLogger(h.Logger).Error("login request failed",
			"event", "http_login_failed",
			"module", "identity-access/token-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{AccessToken: token}, nil
}

// Authenticate exposes the request gate to the platform server. Protected
// handlers must not run unless this yields an identity.
func (h Handler) Authenticate(authorization string) (ports.Identity, error) {
	return h.Service.Authenticate(authorization)
}
