package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/db"
	"github.com/alexanderramin/skillprompt/internal/domain"
)

// SQLiteElementRepo implements ElementRepo over any DBTX, so the importer can
// run it inside a transaction and the catalog inside a pinned connection.
type SQLiteElementRepo struct {
	db db.DBTX
}

// NewSQLiteElementRepo creates a new SQLiteElementRepo.
func NewSQLiteElementRepo(conn db.DBTX) *SQLiteElementRepo {
	return &SQLiteElementRepo{db: conn}
}

// ListByDomainCategory returns elements in catalog (insertion) order. A
// non-positive limit returns every match.
func (r *SQLiteElementRepo) ListByDomainCategory(ctx context.Context, domainID, category string, limit int) ([]*domain.Element, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + elementColumns + `
		FROM elements WHERE domain_id = ? AND category_id = ?
		ORDER BY id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, domainID, category, limit)
	if err != nil {
		return nil, fmt.Errorf("listing elements for %s/%s: %w", domainID, category, err)
	}
	return collectElements(rows)
}

func (r *SQLiteElementRepo) GetByElementID(ctx context.Context, elementID string) (*domain.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE element_id = ?`
	e, err := scanElement(r.db.QueryRowContext(ctx, query, elementID))
	if err != nil {
		return nil, fmt.Errorf("getting element %q: %w", elementID, err)
	}
	return e, nil
}

// ListByName matches the element name or its category, mirroring how
// operators inspect a single entry or a whole category.
func (r *SQLiteElementRepo) ListByName(ctx context.Context, name string) ([]*domain.Element, error) {
	query := `SELECT ` + elementColumns + `
		FROM elements WHERE name = ? OR category_id = ?
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, name, name)
	if err != nil {
		return nil, fmt.Errorf("listing elements named %q: %w", name, err)
	}
	return collectElements(rows)
}

// CountByDomain reports every known domain, including empty ones.
func (r *SQLiteElementRepo) CountByDomain(ctx context.Context) ([]domain.DomainCount, error) {
	query := `SELECT d.domain_id, d.name, COUNT(e.id)
		FROM domains d
		LEFT JOIN elements e ON e.domain_id = d.domain_id
		GROUP BY d.domain_id, d.name
		ORDER BY d.domain_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting elements by domain: %w", err)
	}
	defer rows.Close()

	var counts []domain.DomainCount
	for rows.Next() {
		var c domain.DomainCount
		if err := rows.Scan(&c.DomainID, &c.Name, &c.ElementCount); err != nil {
			return nil, fmt.Errorf("scanning domain count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating domain counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteElementRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM elements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting elements: %w", err)
	}
	return n, nil
}

// Upsert inserts the element or, when element_id already exists, rewrites it
// in place so its catalog position is preserved.
func (r *SQLiteElementRepo) Upsert(ctx context.Context, e *domain.Element) error {
	query := `INSERT INTO elements (` + elementColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(element_id) DO UPDATE SET
			domain_id = excluded.domain_id,
			category_id = excluded.category_id,
			name = excluded.name,
			chinese_name = excluded.chinese_name,
			ai_prompt_template = excluded.ai_prompt_template,
			keywords = excluded.keywords,
			reusability_score = excluded.reusability_score`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Domain,
		e.Category,
		e.Name,
		e.ChineseName,
		e.Template,
		e.Keywords,
		e.ReusabilityScore,
	)
	if err != nil {
		return fmt.Errorf("upserting element %q: %w", e.ID, err)
	}
	return nil
}
