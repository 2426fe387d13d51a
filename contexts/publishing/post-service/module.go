package postservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/publishing/post-service/adapters/http"
	"inkwell/contexts/publishing/post-service/adapters/memory"
	"inkwell/contexts/publishing/post-service/application"
	"inkwell/contexts/publishing/post-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.PostRepository
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
