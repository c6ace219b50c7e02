package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/google/uuid"
)

var testElementCounter atomic.Int64

// Element options
type ElementOption func(*domain.Element)

func WithDomain(d domain.Domain) ElementOption {
	return func(e *domain.Element) {
		e.Domain = d
	}
}

func WithCategory(c string) ElementOption {
	return func(e *domain.Element) {
		e.Category = c
	}
}

func WithChineseName(n string) ElementOption {
	return func(e *domain.Element) {
		e.ChineseName = n
	}
}

func WithTemplate(tmpl string) ElementOption {
	return func(e *domain.Element) {
		e.Template = tmpl
	}
}

func WithKeywords(kw string) ElementOption {
	return func(e *domain.Element) {
		e.Keywords = kw
	}
}

func WithReusability(score float64) ElementOption {
	return func(e *domain.Element) {
		e.ReusabilityScore = score
	}
}

func WithElementID(id string) ElementOption {
	return func(e *domain.Element) {
		e.ID = id
	}
}

// NewTestElement builds a portrait makeup element with a unique ID.
func NewTestElement(name string, opts ...ElementOption) *domain.Element {
	n := testElementCounter.Add(1)
	e := &domain.Element{
		ID:               uuid.New().String(),
		Domain:           domain.DomainPortrait,
		Category:         "makeup_styles",
		Name:             name,
		ChineseName:      fmt.Sprintf("测试%d", n),
		Template:         name + " style",
		ReusabilityScore: 5,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SeedElements upserts elements into the catalog in the given order.
func SeedElements(t *testing.T, database *sql.DB, elements ...*domain.Element) {
	t.Helper()
	repo := repository.NewSQLiteElementRepo(database)
	for _, e := range elements {
		if err := repo.Upsert(context.Background(), e); err != nil {
			t.Fatalf("seeding element %s: %v", e.Name, err)
		}
	}
}
