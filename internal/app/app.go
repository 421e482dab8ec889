package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"promptstudio/internal/config"
	"promptstudio/internal/domain"
	"promptstudio/internal/server"
	"promptstudio/internal/service"
	"promptstudio/internal/storage"
)

// App wires storage, services and the event hub from a Config. Both
// transports (MCP and HTTP) run on top of it.
type App struct {
	cfg    *config.Config
	logger *zap.Logger

	db  *storage.DB
	hub *server.Hub

	Editor     *service.EditorService
	Simulation *service.SimulationService
}

// New creates an App. Call Close when done.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{cfg: cfg, logger: logger, hub: server.NewHub()}

	versions, err := a.openVersionStore()
	if err != nil {
		return nil, err
	}

	editor, err := service.NewEditorService(versions, a.hub,
		service.WithLogger(logger),
		service.WithHistoryLimit(cfg.History.Limit),
		service.WithPreviewCacheSize(cfg.Preview.CacheSize),
	)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("editor: %w", err)
	}
	a.Editor = editor
	a.Simulation = service.NewSimulationService(editor, a.hub,
		service.WithDelays(cfg.GetResponseDelay(), cfg.GetFeedbackDelay()),
		service.WithSimulationLogger(logger),
	)
	return a, nil
}

func (a *App) openVersionStore() (domain.VersionStore, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageSQLite:
		db, err := storage.Open(a.cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		a.db = db
		a.logger.Info("saved versions in sqlite", zap.String("dsn", displayDSN(a.cfg.Storage.DSN)))
		return storage.NewVersionStore(db), nil
	default:
		return storage.NewMemoryVersionStore(), nil
	}
}

func displayDSN(dsn string) string {
	if dsn == "" {
		return storage.MemoryDSN
	}
	return dsn
}

// Hub returns the event hub that feeds /events.
func (a *App) Hub() *server.Hub { return a.hub }

// Shutdown waits for in-flight simulations, bounded by ctx.
func (a *App) Shutdown(ctx context.Context) error {
	if a.Simulation == nil {
		return nil
	}
	return a.Simulation.Wait(ctx)
}

// Close disconnects event subscribers and closes the database.
func (a *App) Close() error {
	a.hub.Close()
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
		a.db = nil
	}
	return errors.Join(errs...)
}
