package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillprompt/internal/db"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/importer"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/alexanderramin/skillprompt/internal/rules"
)

type catalogService struct {
	elements repository.ElementRepo
	uow      db.UnitOfWork
	tables   *rules.Tables
	stats    StatsService
	observer UseCaseObserver
}

// NewCatalogService wires catalog maintenance. stats may be nil; when set,
// its cache is dropped after every successful import.
func NewCatalogService(
	elements repository.ElementRepo,
	uow db.UnitOfWork,
	tables *rules.Tables,
	stats StatsService,
	observers ...UseCaseObserver,
) CatalogService {
	if tables == nil {
		tables = rules.Default()
	}
	return &catalogService{
		elements: elements,
		uow:      uow,
		tables:   tables,
		stats:    stats,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadCatalogSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

func (s *catalogService) ImportFromSchema(ctx context.Context, schema *importer.CatalogSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"elements": len(schema.Elements)}
	defer func() {
		observeStep(ctx, s.observer, "import-catalog", startedAt, err, fields)
	}()

	if errs := importer.ValidateCatalogSchema(schema, s.tables); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema, s.tables)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		domains := repository.NewSQLiteDomainRepo(tx)
		elements := repository.NewSQLiteElementRepo(tx)

		for _, d := range generated.Domains {
			if err := domains.Upsert(ctx, d); err != nil {
				return fmt.Errorf("importing domain %q: %w", d.ID, err)
			}
		}
		for _, e := range generated.Elements {
			if err := elements.Upsert(ctx, e); err != nil {
				return fmt.Errorf("importing element %q: %w", e.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.stats != nil {
		s.stats.Invalidate()
	}
	return &ImportResult{
		DomainCount:  len(generated.Domains),
		ElementCount: len(generated.Elements),
	}, nil
}

// Show lists elements whose name or category equals name.
func (s *catalogService) Show(ctx context.Context, name string) ([]*domain.Element, error) {
	elements, err := s.elements.ListByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("%q: %w", name, repository.ErrElementNotFound)
	}
	return elements, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
