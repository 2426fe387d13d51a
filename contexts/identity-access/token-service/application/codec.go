package application

import (
	"errors"
	"strconv"
	"time"

	domainerrors "inkwell/contexts/identity-access/token-service/domain/errors"
	"inkwell/contexts/identity-access/token-service/ports"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies the compact token representation of claims.
// Decode checks signature and shape only; expiry is the verifier's concern so
// that a forged token and a merely stale one stay distinguishable.
type Codec struct {
	secret []byte
}

func NewCodec(secret []byte) Codec {
	return Codec{secret: secret}
}

func (c Codec) Encode(claims ports.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    claims.Issuer,
		Subject:   strconv.FormatInt(claims.UserID, 10),
		IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
		NotBefore: jwt.NewNumericDate(claims.NotBefore),
		ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		ID:        claims.TokenID,
	})
	return token.SignedString(c.secret)
}

func (c Codec) Decode(raw string) (ports.Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		raw,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return ports.Claims{}, domainerrors.ErrInvalidToken
	}
	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return ports.Claims{}, domainerrors.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil {
		return ports.Claims{}, domainerrors.ErrInvalidToken
	}
	if registered.ExpiresAt == nil || registered.IssuedAt == nil {
		return ports.Claims{}, domainerrors.ErrInvalidToken
	}

	return ports.Claims{
		Issuer:    registered.Issuer,
		UserID:    userID,
		IssuedAt:  registered.IssuedAt.Time.UTC(),
		NotBefore: numericDateOrZero(registered.NotBefore),
		ExpiresAt: registered.ExpiresAt.Time.UTC(),
		TokenID:   registered.ID,
	}, nil
}

func numericDateOrZero(date *jwt.NumericDate) time.Time {
	if date == nil {
		return time.Time{}
	}
	return date.Time.UTC()
}
