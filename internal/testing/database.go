package testing

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// CreateTestDB creates an in-memory SQLite test database with the same
// pragmas the real store uses (minus WAL, which is meaningless in memory).
// Cleanup is registered via t.Cleanup(). Callers that need the glossary
// schema run store.Migrate on the returned handle.
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		t.Fatalf("Failed to set busy timeout: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
