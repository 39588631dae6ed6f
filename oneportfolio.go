// Package oneportfolio is the embedded persistence and derivation core of the
// One Portfolio app: a SQLite-backed store for assets and preferences, plus
// pure functions that turn stored rows into portfolio aggregates.
//
// The UI shell calls Open once at startup, checks Err for a degraded state,
// and then uses the repositories directly. There is no network surface; the
// store is single-process, single-writer, on-device.
package oneportfolio

import (
	"oneportfolio/internal/config"
	apperrors "oneportfolio/internal/errors"
	"oneportfolio/internal/logger"
	"oneportfolio/internal/repository"
	"oneportfolio/internal/store"
)

// App bundles the initialized store and its repositories.
//
// Open never fails outright: an initialization error is captured in Err so
// the caller can render an error state instead of crashing, mirroring how the
// app shell treats startup.
type App struct {
	store *store.Store
	err   error

	Assets      repository.AssetRepository
	Preferences repository.PreferencesRepository
	Prices      repository.PriceCacheRepository
}

// Open initializes the store at the configured database path (DB_PATH, or
// one_portfolio.db by default).
func Open() *App {
	cfg := config.Get()
	logger.Init(cfg.Env)
	return OpenWithConfig(store.Config{Path: cfg.DatabasePath})
}

// OpenWithConfig initializes the store at the given location and wires the
// repositories. Check Err before use.
func OpenWithConfig(cfg store.Config) *App {
	app := &App{store: store.New(cfg)}

	db, err := app.store.Initialize()
	if err != nil {
		logger.Get().Errorf("Database initialization failed: %v", err)
		app.err = err
		return app
	}

	app.Assets = repository.NewAssetRepository(db)
	app.Preferences = repository.NewPreferencesRepository(db)
	app.Prices = repository.NewPriceCacheRepository(db)
	return app
}

// Err returns the initialization error, if any. An App with a non-nil Err has
// nil repositories and only Close is safe to call.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether initialization succeeded and the repositories are
// usable.
func (a *App) Ready() bool {
	return a.err == nil
}

// ClearAllData deletes every asset, preference and cached price in one
// transaction while preserving schema and migration history.
func (a *App) ClearAllData() error {
	if a.err != nil {
		return apperrors.Wrap(apperrors.ErrNotInitialized, a.err)
	}
	return a.store.Reset()
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.store.Close()
}
