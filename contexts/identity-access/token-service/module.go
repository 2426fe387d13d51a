package tokenservice

import (
	"log/slog"
	"time"

	httpadapter "inkwell/contexts/identity-access/token-service/adapters/http"
	"inkwell/contexts/identity-access/token-service/adapters/system"
	"inkwell/contexts/identity-access/token-service/application"
	"inkwell/contexts/identity-access/token-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Secret      []byte
	Issuer      string
	TokenTTL    time.Duration
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Codec:       application.NewCodec(deps.Secret),
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Issuer:      deps.Issuer,
		TokenTTL:    deps.TokenTTL,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

// NewSystemModule wires the runtime clock and uuid token ids.
func NewSystemModule(secret []byte, issuer string, ttl time.Duration, logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Secret:      secret,
		Issuer:      issuer,
		TokenTTL:    ttl,
		Clock:       system.Clock{},
		IDGenerator: system.UUIDGenerator{},
		Logger:      logger,
	})
}
