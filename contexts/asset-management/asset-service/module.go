package assetservice

import (
	"log/slog"

	httpadapter "assetledger/contexts/asset-management/asset-service/adapters/http"
	"assetledger/contexts/asset-management/asset-service/adapters/memory"
	"assetledger/contexts/asset-management/asset-service/application"
	"assetledger/contexts/asset-management/asset-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Directory   ports.DirectoryReader
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	scope := application.AccessScope{}
	lifecycle := application.Lifecycle{
		Repo:      deps.Repository,
		Directory: deps.Directory,
		Scope:     scope,
		Clock:     deps.Clock,
		IDGen:     deps.IDGenerator,
		Logger:    deps.Logger,
	}
	query := application.Query{
		Repo:      deps.Repository,
		Directory: deps.Directory,
		Scope:     scope,
	}
	return Module{
		Handler: httpadapter.Handler{
			Lifecycle: lifecycle,
			Query:     query,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(directory ports.DirectoryReader, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Directory:   directory,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
