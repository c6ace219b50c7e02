package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/db"
	"github.com/alexanderramin/skillprompt/internal/domain"
)

// SQLiteDomainRepo implements DomainRepo.
type SQLiteDomainRepo struct {
	db db.DBTX
}

func NewSQLiteDomainRepo(conn db.DBTX) *SQLiteDomainRepo {
	return &SQLiteDomainRepo{db: conn}
}

func (r *SQLiteDomainRepo) Upsert(ctx context.Context, d domain.DomainInfo) error {
	query := `INSERT INTO domains (domain_id, name) VALUES (?, ?)
		ON CONFLICT(domain_id) DO UPDATE SET name = excluded.name`
	if _, err := r.db.ExecContext(ctx, query, d.ID, d.Name); err != nil {
		return fmt.Errorf("upserting domain %q: %w", d.ID, err)
	}
	return nil
}

func (r *SQLiteDomainRepo) List(ctx context.Context) ([]domain.DomainInfo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT domain_id, name FROM domains ORDER BY domain_id`)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}
	defer rows.Close()

	var out []domain.DomainInfo
	for rows.Next() {
		var d domain.DomainInfo
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scanning domain: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating domains: %w", err)
	}
	return out, nil
}
