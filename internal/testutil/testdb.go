package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/skillprompt/internal/db"
	"github.com/alexanderramin/skillprompt/internal/domain"
)

// NewTestDB opens a migrated in-memory catalog, closed on test cleanup.
// Any elements given are seeded before it is returned.
func NewTestDB(t *testing.T, seed ...*domain.Element) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test catalog: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	if len(seed) > 0 {
		SeedElements(t, database, seed...)
	}
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
