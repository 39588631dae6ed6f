package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"oneportfolio/internal/logger"
)

// migration is a versioned, one-way schema change applied exactly once.
type migration struct {
	version int
	up      func(tx *gorm.DB) error
}

// migrations holds every migration in ascending version order.
// Add new migrations here as the schema evolves, and bump SchemaVersion.
var migrations = []migration{
	{
		// Initial schema: all base tables.
		version: 1,
		up: func(tx *gorm.DB) error {
			for _, stmt := range allTables {
				if err := tx.Exec(stmt).Error; err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// schemaMigration is one applied-migration record.
type schemaMigration struct {
	Version   int       `gorm:"primaryKey"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

// RunMigrations brings the schema up to date and returns the number of
// migrations applied. Zero is the common "already up to date" result.
func RunMigrations(db *gorm.DB) (int, error) {
	return runMigrations(db, migrations)
}

func runMigrations(db *gorm.DB, pending []migration) (int, error) {
	log := logger.Get()

	// The tracking table must exist before the version can be read.
	if err := db.Exec(createMigrationsTable).Error; err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	current, err := currentVersion(db)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, m := range pending {
		if m.version <= current {
			continue
		}
		log.Infof("Applying migration %d...", m.version)

		// Body and version record commit together; a failing body is
		// never recorded as applied.
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.up(tx); err != nil {
				return err
			}
			record := schemaMigration{Version: m.version, AppliedAt: time.Now().UTC()}
			return tx.Create(&record).Error
		})
		if err != nil {
			return applied, fmt.Errorf("migration %d failed: %w", m.version, err)
		}
		applied++
	}

	if applied == 0 {
		log.Debugf("Schema is up to date (version %d)", current)
	} else {
		log.Infof("Applied %d migration(s)", applied)
	}
	return applied, nil
}

// currentVersion returns the highest applied migration version, or 0 when no
// migrations have been recorded yet.
func currentVersion(db *gorm.DB) (int, error) {
	var version int
	err := db.Raw("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
