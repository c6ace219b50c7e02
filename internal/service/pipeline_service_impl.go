package service

import (
	"context"
	"time"

	"github.com/alexanderramin/skillprompt/internal/compose"
	"github.com/alexanderramin/skillprompt/internal/consistency"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/intent"
	"github.com/alexanderramin/skillprompt/internal/retrieval"
)

type pipelineService struct {
	extractor *intent.Extractor
	retriever *retrieval.Retriever
	checker   *consistency.Checker
	composer  *compose.Composer
	observer  UseCaseObserver
}

func NewPipelineService(
	extractor *intent.Extractor,
	retriever *retrieval.Retriever,
	checker *consistency.Checker,
	composer *compose.Composer,
	observers ...UseCaseObserver,
) PipelineService {
	return &pipelineService{
		extractor: extractor,
		retriever: retriever,
		checker:   checker,
		composer:  composer,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *pipelineService) ParseIntent(ctx context.Context, text string, hint domain.Domain) domain.Intent {
	startedAt := time.Now().UTC()
	in := s.extractor.Extract(text, hint)
	observeStep(ctx, s.observer, "parse-intent", startedAt, nil, map[string]any{
		"hint":   string(hint),
		"domain": string(in.Domain),
	})
	return in
}

func (s *pipelineService) QueryElements(ctx context.Context, req QueryRequest) (out []domain.Candidate, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observeStep(ctx, s.observer, "query-elements", startedAt, err, map[string]any{
			"domain":   string(req.Domain),
			"category": req.Category,
			"keywords": len(req.Keywords),
			"results":  len(out),
		})
	}()

	return s.retriever.Retrieve(ctx, req.Domain, req.Category, req.Keywords, req.Limit)
}

func (s *pipelineService) QueryByField(ctx context.Context, req FieldQueryRequest) (out []domain.Candidate, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		observeStep(ctx, s.observer, "query-by-field", startedAt, err, map[string]any{
			"field":   req.Field,
			"domain":  string(req.Domain),
			"results": len(out),
		})
	}()

	d := req.Domain
	if d == "" {
		d = domain.DomainPortrait
	}
	return s.retriever.RetrieveByField(ctx, req.Field, req.Keywords, d, req.Limit)
}

func (s *pipelineService) CheckConsistency(ctx context.Context, elements []domain.SelectedElement, in *domain.Intent) domain.Report {
	startedAt := time.Now().UTC()
	r := s.checker.Check(elements, in)
	observeStep(ctx, s.observer, "check-consistency", startedAt, nil, map[string]any{
		"elements":   len(elements),
		"issues":     r.TotalIssues,
		"consistent": r.IsConsistent,
	})
	return r
}

func (s *pipelineService) ComposePrompt(ctx context.Context, req ComposeRequest) string {
	startedAt := time.Now().UTC()
	prompt := s.composer.Compose(req.Elements, req.Options)
	observeStep(ctx, s.observer, "compose-prompt", startedAt, nil, map[string]any{
		"elements": len(req.Elements),
		"mode":     string(domain.ParseComposeMode(string(req.Options.Mode))),
		"chars":    len(prompt),
	})
	return prompt
}
