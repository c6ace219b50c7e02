package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteCatalog opens sessions backed by a dedicated pool connection.
type SQLiteCatalog struct {
	db *sql.DB
}

func NewSQLiteCatalog(db *sql.DB) *SQLiteCatalog {
	return &SQLiteCatalog{db: db}
}

func (c *SQLiteCatalog) Open(ctx context.Context) (CatalogSession, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring catalog connection: %w", err)
	}
	return &sqliteCatalogSession{
		SQLiteElementRepo: NewSQLiteElementRepo(conn),
		conn:              conn,
	}, nil
}

type sqliteCatalogSession struct {
	*SQLiteElementRepo
	conn *sql.Conn
}

// Close returns the connection to the pool.
func (s *sqliteCatalogSession) Close() error {
	return s.conn.Close()
}
