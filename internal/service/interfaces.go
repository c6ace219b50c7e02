package service

import (
	"context"

	"github.com/alexanderramin/skillprompt/internal/compose"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/importer"
)

// QueryRequest selects candidates from one domain/category.
type QueryRequest struct {
	Domain   domain.Domain
	Category string
	Keywords []string
	Limit    int
}

// FieldQueryRequest selects candidates by framework field name.
type FieldQueryRequest struct {
	Field    string
	Keywords []string
	Domain   domain.Domain
	Limit    int
}

// ComposeRequest carries a composition call.
type ComposeRequest struct {
	Elements []domain.SelectedElement
	Options  compose.Options
}

type PipelineService interface {
	ParseIntent(ctx context.Context, text string, hint domain.Domain) domain.Intent
	QueryElements(ctx context.Context, req QueryRequest) ([]domain.Candidate, error)
	QueryByField(ctx context.Context, req FieldQueryRequest) ([]domain.Candidate, error)
	CheckConsistency(ctx context.Context, elements []domain.SelectedElement, in *domain.Intent) domain.Report
	ComposePrompt(ctx context.Context, req ComposeRequest) string
}

// Slot is one category the selection helper fills for an intent.
type Slot struct {
	Field    string
	Category string
	Keywords []string
}

// SlotResult is the best candidate found for a Slot, if any.
type SlotResult struct {
	Slot      Slot
	Candidate *domain.Candidate
}

type SelectionService interface {
	// SelectForIntent picks the best-matching element per slot, preserving
	// slot order.
	SelectForIntent(ctx context.Context, in domain.Intent) ([]SlotResult, error)
}

type StatsService interface {
	// LibraryStats reports catalog totals. A non-empty domainID narrows the
	// per-domain breakdown; the total always covers the whole catalog.
	LibraryStats(ctx context.Context, domainID string) (*domain.LibraryStats, error)
	Invalidate()
}

// ImportResult holds the outcome of a catalog import.
type ImportResult struct {
	DomainCount  int
	ElementCount int
}

type CatalogService interface {
	Import(ctx context.Context, filePath string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.CatalogSchema) (*ImportResult, error)
	Show(ctx context.Context, name string) ([]*domain.Element, error)
}
