package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog", "elements.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.FileExists(t, path)
}

func TestOpenDB_PragmasOnEveryConnection(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "elements.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(3)

	for i := 0; i < 3; i++ {
		conn, err := db.Conn(t.Context())
		require.NoError(t, err)
		defer conn.Close()

		var fk, timeout int
		require.NoError(t, conn.QueryRowContext(t.Context(), `PRAGMA foreign_keys`).Scan(&fk))
		require.NoError(t, conn.QueryRowContext(t.Context(), `PRAGMA busy_timeout`).Scan(&timeout))
		assert.Equal(t, 1, fk, "connection %d", i)
		assert.Equal(t, 5000, timeout, "connection %d", i)
	}
}

func TestOpenDB_ForeignKeysRejectUnknownDomain(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO elements (element_id, domain_id, category_id, name, ai_prompt_template)
		VALUES ('x1', 'no_such_domain', 'misc', 'orphan', 'orphan')`)
	assert.Error(t, err)
}
