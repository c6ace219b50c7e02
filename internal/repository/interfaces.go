package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/skillprompt/internal/domain"
)

// ErrElementNotFound is returned by single-element lookups that match no row.
var ErrElementNotFound = errors.New("element not found")

// ElementRepo reads and writes catalog elements.
type ElementRepo interface {
	ListByDomainCategory(ctx context.Context, domainID, category string, limit int) ([]*domain.Element, error)
	GetByElementID(ctx context.Context, elementID string) (*domain.Element, error)
	ListByName(ctx context.Context, name string) ([]*domain.Element, error)
	CountByDomain(ctx context.Context) ([]domain.DomainCount, error)
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, e *domain.Element) error
}

// DomainRepo maintains the domain display-name table.
type DomainRepo interface {
	Upsert(ctx context.Context, d domain.DomainInfo) error
	List(ctx context.Context) ([]domain.DomainInfo, error)
}

// Catalog hands out read sessions scoped to a single request.
type Catalog interface {
	Open(ctx context.Context) (CatalogSession, error)
}

// CatalogSession is a read view over the element catalog. Callers must Close
// it on every path once the request is done.
type CatalogSession interface {
	ListByDomainCategory(ctx context.Context, domainID, category string, limit int) ([]*domain.Element, error)
	Close() error
}
