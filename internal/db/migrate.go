package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateFixDoubledHair(db); err != nil {
		return fmt.Errorf("repairing hair color templates: %w", err)
	}
	return nil
}

// migrateFixDoubledHair repairs seed rows whose template repeats the category
// noun ("black hair hair"), which leaks straight into composed prompts.
func migrateFixDoubledHair(db *sql.DB) error {
	ctx := context.Background()
	_, err := db.ExecContext(ctx,
		`UPDATE elements
		SET ai_prompt_template = SUBSTR(ai_prompt_template, 1, LENGTH(ai_prompt_template) - 5)
		WHERE ai_prompt_template LIKE '% hair hair'`)
	if err != nil {
		return fmt.Errorf("updating elements: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS domains (
		domain_id TEXT PRIMARY KEY,
		name      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS elements (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		element_id         TEXT NOT NULL UNIQUE,
		domain_id          TEXT NOT NULL REFERENCES domains(domain_id) ON DELETE CASCADE,
		category_id        TEXT NOT NULL,
		name               TEXT NOT NULL,
		chinese_name       TEXT NOT NULL DEFAULT '',
		ai_prompt_template TEXT NOT NULL DEFAULT '',
		keywords           TEXT NOT NULL DEFAULT '',
		reusability_score  REAL NOT NULL DEFAULT 0,
		UNIQUE (domain_id, category_id, name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_elements_domain_category ON elements(domain_id, category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_elements_name ON elements(name)`,

	// Seed domains so stats report display names before any import.
	`INSERT OR IGNORE INTO domains (domain_id, name) VALUES
		('portrait', 'Portrait'),
		('art', 'Art'),
		('design', 'Design'),
		('product', 'Product'),
		('video', 'Video'),
		('common', 'Common')`,
}
