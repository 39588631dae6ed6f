// Package store owns the on-device SQLite database: opening the handle,
// bringing the schema up to date, and tearing everything down again.
package store

import (
	"strings"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "oneportfolio/internal/errors"
	"oneportfolio/internal/logger"
)

// Config holds store configuration.
type Config struct {
	// Path is the SQLite database file, or a file: URI for special modes.
	Path string
}

// MemoryPath returns a Config backed by a uniquely-named shared in-memory
// database. Each distinct name is an isolated database that lives as long as
// at least one connection stays open.
func MemoryPath(name string) Config {
	return Config{Path: "file:" + name + "?mode=memory&cache=shared"}
}

// Store owns the single database handle. It is constructed explicitly and
// shared by every repository; rows are never cached, so reads always observe
// the latest committed state.
type Store struct {
	mu  sync.Mutex
	cfg Config
	db  *gorm.DB
}

// New creates a Store for the given configuration. The database is not opened
// until Initialize is called.
func New(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Initialize opens the database, enables foreign-key enforcement, and runs any
// pending migrations. It is idempotent: if the store is already open, the
// existing handle is returned without reopening.
func (s *Store) Initialize() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	log := logger.Get()
	log.Infof("Opening database at %s", s.cfg.Path)

	db, err := gorm.Open(sqlite.Open(s.dsn()), &gorm.Config{})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInitialization, err)
	}

	if _, err := RunMigrations(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, apperrors.Wrap(apperrors.ErrInitialization, err)
	}

	s.db = db
	log.Info("Database initialized")
	return s.db, nil
}

// Get returns the database handle, or NOT_INITIALIZED if Initialize has not
// completed successfully.
func (s *Store) Get() (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, apperrors.ErrNotInitialized
	}
	return s.db, nil
}

// Reset deletes every row from the data tables while preserving table
// structure and migration history. The deletes run in one transaction, so a
// partial wipe is never visible to subsequent reads. Used by the
// "Clear All Data" feature.
func (s *Store) Reset() error {
	db, err := s.Get()
	if err != nil {
		return err
	}

	logger.Get().Info("Resetting database...")
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, table := range dataTables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	return nil
}

// Close releases the database handle. Subsequent Get calls fail until
// Initialize is called again.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	if err := sqlDB.Close(); err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, err)
	}
	s.db = nil
	logger.Get().Info("Database closed")
	return nil
}

// dsn appends the foreign-key pragma to the configured path.
func (s *Store) dsn() string {
	sep := "?"
	if strings.Contains(s.cfg.Path, "?") {
		sep = "&"
	}
	return s.cfg.Path + sep + "_foreign_keys=on"
}
