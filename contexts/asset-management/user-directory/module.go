package userdirectory

import (
	"log/slog"

	"assetledger/contexts/asset-management/user-directory/adapters/crypto"
	httpadapter "assetledger/contexts/asset-management/user-directory/adapters/http"
	"assetledger/contexts/asset-management/user-directory/adapters/memory"
	"assetledger/contexts/asset-management/user-directory/application"
	"assetledger/contexts/asset-management/user-directory/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Hasher      ports.Hasher
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Hasher: deps.Hasher,
		IDGen:  deps.IDGenerator,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Hasher:      crypto.BcryptHasher{},
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
