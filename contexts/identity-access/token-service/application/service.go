package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "inkwell/contexts/identity-access/token-service/domain/errors"
	"inkwell/contexts/identity-access/token-service/ports"
)

const defaultTokenTTL = 30 * time.Minute

type Service struct {
	Codec       Codec
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Issuer      string
	TokenTTL    time.Duration
	Logger      *slog.Logger
}

// Issue builds signed claims for the given user and encodes them. The
// validity window starts at the injected clock's now and closes TokenTTL
// later.
func (s Service) Issue(ctx context.Context, userID int64) (string, error) {
	now := s.now()
	tokenID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return "", err
	}

	token, err := s.Codec.Encode(ports.Claims{
		Issuer:    s.Issuer,
		UserID:    userID,
		IssuedAt:  now,
		NotBefore: now,
		ExpiresAt: now.Add(s.tokenTTL()),
		TokenID:   tokenID,
	})
	if err != nil {
		return "", err
	}

	ResolveLogger(s.Logger).Info("access token issued",
		"event", "token_issued",
		"module", "identity-access/token-service",
		"layer", "application",
		"user_id", userID,
		"token_id", tokenID,
	)
	return token, nil
}

// Verify decodes the token and checks its validity window. Expiry is a
// category of its own so callers can log it apart from forgery.
func (s Service) Verify(token string) (ports.Claims, error) {
	claims, err := s.Codec.Decode(token)
	if err != nil {
		return ports.Claims{}, err
	}
	if s.now().After(claims.ExpiresAt) {
		return ports.Claims{}, domainerrors.ErrExpiredToken
	}
	return claims, nil
}

// Authenticate parses a raw Authorization header and verifies its credential.
// Verification failures of any kind collapse into ErrUnauthorized; the
// sub-reason is only logged, so callers cannot probe which check failed.
func (s Service) Authenticate(authorization string) (ports.Identity, error) {
	scheme, credential := splitAuthorization(authorization)
	if credential == "" {
		return ports.Identity{}, domainerrors.ErrMissingCredentials
	}
	if !strings.EqualFold(scheme, "bearer") {
		return ports.Identity{}, domainerrors.ErrUnsupportedScheme
	}

	claims, err := s.Verify(credential)
	if err != nil {
		reason := "invalid"
		if errors.Is(err, domainerrors.ErrExpiredToken) {
			reason = "expired"
		}
		ResolveLogger(s.Logger).Warn("bearer token rejected",
			"event", "token_rejected",
			"module", "identity-access/token-service",
			"layer", "application",
			"reason", reason,
		)
		return ports.Identity{}, domainerrors.ErrUnauthorized
	}

	return ports.Identity{UserID: claims.UserID}, nil
}

func splitAuthorization(header string) (scheme string, credential string) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}

func (s Service) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return defaultTokenTTL
	}
	return s.TokenTTL
}
