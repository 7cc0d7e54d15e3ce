package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/courtsidehq/courtside/internal/config"
	"github.com/courtsidehq/courtside/internal/domain/snapshot"
	"github.com/courtsidehq/courtside/internal/infrastructure/repository/memory"
	"github.com/courtsidehq/courtside/internal/infrastructure/snapshotstore"
	"github.com/courtsidehq/courtside/internal/interfaces/httpapi"
	"github.com/courtsidehq/courtside/internal/platform/logging"
	"github.com/courtsidehq/courtside/internal/usecase"
)

// NewHTTPServer loads the snapshots once, builds the in-memory repositories
// over them, and wires the query services into the router. The snapshots are
// immutable for the lifetime of the process; a new build means a restart.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	store, err := newSnapshotStore(cfg)
	if err != nil {
		return nil, err
	}

	snapshots := usecase.NewSnapshotService(store, logger)
	bundle, missing, err := snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}
	if len(missing) > 0 {
		logger.WarnContext(ctx, "snapshots missing, affected endpoints will serve empty data",
			"missing", missing, "backend", cfg.SnapshotBackend)
	}

	teamRepo := memory.NewTeamRepository(bundle.Teams)
	playerRepo := memory.NewPlayerRepository(bundle.Players)
	rivalryRepo := memory.NewRivalryRepository(bundle.Rivalries)
	stateRepo := memory.NewStateRepository(bundle.States)

	handler := httpapi.NewHandler(
		usecase.NewTeamQueryService(teamRepo, rivalryRepo),
		usecase.NewPlayerQueryService(playerRepo),
		usecase.NewStateQueryService(stateRepo, teamRepo),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	logger.InfoContext(ctx, "snapshots loaded",
		"teams", len(bundle.Teams),
		"players", len(bundle.Players),
		"rivalries", len(bundle.Rivalries),
		"states", len(bundle.States),
	)

	return server, nil
}

func newSnapshotStore(cfg config.Config) (snapshot.Store, error) {
	switch cfg.SnapshotBackend {
	case config.SnapshotBackendPostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, err
		}
		return snapshotstore.NewPostgresStore(db), nil
	default:
		return snapshotstore.NewFilesystemStore(cfg.SnapshotDir)
	}
}
