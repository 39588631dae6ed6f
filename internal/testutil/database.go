// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"fmt"
	"testing"

	"gorm.io/gorm"

	"oneportfolio/internal/store"
)

// SetupTestStore creates a Store over a uniquely-named in-memory SQLite
// database and initializes it, running the real migrations. Each call gets an
// isolated database.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	s := store.New(store.MemoryPath(fmt.Sprintf("testdb_%d", nextID())))
	if _, err := s.Initialize(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return s
}

// SetupTestDB creates an initialized in-memory store and returns its handle.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	s := SetupTestStore(t)
	db, err := s.Get()
	if err != nil {
		t.Fatalf("failed to get test database: %v", err)
	}
	return db
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
