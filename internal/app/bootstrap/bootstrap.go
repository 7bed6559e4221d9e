package bootstrap

import (
	"errors"
	"log/slog"
	"strings"

	assetservice "assetledger/contexts/asset-management/asset-service"
	assetpostgres "assetledger/contexts/asset-management/asset-service/adapters/postgres"
	userdirectory "assetledger/contexts/asset-management/user-directory"
	usercrypto "assetledger/contexts/asset-management/user-directory/adapters/crypto"
	userpostgres "assetledger/contexts/asset-management/user-directory/adapters/postgres"
	"assetledger/internal/platform/config"
	"assetledger/internal/platform/db"
	"assetledger/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	userRepo := userpostgres.NewRepository(pg.DB, logger)
	userModule := userdirectory.NewModule(userdirectory.Dependencies{
		Repository:  userRepo,
		Hasher:      usercrypto.BcryptHasher{},
		IDGenerator: userpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	assetRepo := assetpostgres.NewRepository(pg.DB, logger)
	assetModule := assetservice.NewModule(assetservice.Dependencies{
		Repository:  assetRepo,
		Directory:   userModule.Service,
		Clock:       assetpostgres.SystemClock{},
		IDGenerator: assetpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(assetModule, userModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	defer func() {
		if err := a.postgres.Close(); err != nil {
			a.logger.Error("postgres close failed",
				"event", "postgres_close_failed",
				"module", "internal/app/bootstrap",
				"layer", "platform",
				"error", err.Error(),
			)
		}
	}()
	return a.server.Start()
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
