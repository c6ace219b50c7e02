package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/domain"
)

const elementColumns = `element_id, domain_id, category_id, name, chinese_name,
	ai_prompt_template, keywords, reusability_score`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanElement(row rowScanner) (*domain.Element, error) {
	var e domain.Element
	err := row.Scan(
		&e.ID, &e.Domain, &e.Category, &e.Name, &e.ChineseName,
		&e.Template, &e.Keywords, &e.ReusabilityScore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrElementNotFound
		}
		return nil, fmt.Errorf("scanning element: %w", err)
	}
	return &e, nil
}

func collectElements(rows *sql.Rows) ([]*domain.Element, error) {
	defer rows.Close()

	var elements []*domain.Element
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating elements: %w", err)
	}
	return elements, nil
}
