// Package retrieval ranks catalog elements for one domain/category pair
// against optional search keywords.
package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/alexanderramin/skillprompt/internal/rules"
)

const (
	// DefaultLimit applies when the caller passes a non-positive limit.
	DefaultLimit = 10
	// overFetch widens the catalog read when keyword filtering will drop rows.
	overFetch = 3
)

// Retriever queries the catalog through short-lived sessions.
type Retriever struct {
	catalog repository.Catalog
	tables  *rules.Tables
}

// NewRetriever creates a Retriever. A nil tables argument selects the embedded
// defaults.
func NewRetriever(catalog repository.Catalog, tables *rules.Tables) *Retriever {
	if tables == nil {
		tables = rules.Default()
	}
	return &Retriever{catalog: catalog, tables: tables}
}

// Retrieve returns up to limit candidates for domain/category. With keywords,
// candidates are scored by the fraction of keywords found in the element's
// searchable text, zero scores are dropped, and ties keep catalog order.
// Without keywords, candidates come back in catalog order with relevance 0.
func (r *Retriever) Retrieve(ctx context.Context, d domain.Domain, category string, keywords []string, limit int) ([]domain.Candidate, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	keywords = NormalizeKeywords(keywords)
	category = r.tables.CanonicalCategory(category)

	fetch := limit
	if len(keywords) > 0 {
		fetch = limit * overFetch
	}

	elements, err := r.list(ctx, d, category, fetch)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Candidate, 0, len(elements))
	if len(keywords) == 0 {
		for _, e := range elements {
			out = append(out, domain.NewCandidate(e, 0))
		}
		return truncate(out, limit), nil
	}

	for _, e := range elements {
		if score := Relevance(e, keywords); score > 0 {
			out = append(out, domain.NewCandidate(e, score))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	return truncate(out, limit), nil
}

// RetrieveByField resolves a framework field name such as "styling.makeup"
// to its catalog category and retrieves from it. Unknown fields yield no
// candidates.
func (r *Retriever) RetrieveByField(ctx context.Context, field string, keywords []string, d domain.Domain, limit int) ([]domain.Candidate, error) {
	category, ok := r.tables.FieldCategory(field)
	if !ok {
		return []domain.Candidate{}, nil
	}
	return r.Retrieve(ctx, d, category, keywords, limit)
}

func (r *Retriever) list(ctx context.Context, d domain.Domain, category string, n int) ([]*domain.Element, error) {
	sess, err := r.catalog.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer sess.Close()

	elements, err := sess.ListByDomainCategory(ctx, string(d), category, n)
	if err != nil {
		return nil, fmt.Errorf("querying %s/%s: %w", d, category, err)
	}
	return elements, nil
}

// Relevance is the share of keywords contained in the element's searchable
// text. keywords must already be normalized and non-empty.
func Relevance(e *domain.Element, keywords []string) float64 {
	text := e.SearchText()
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			matches++
		}
	}
	return float64(matches) / float64(len(keywords))
}

// NormalizeKeywords trims each keyword and drops empty ones.
func NormalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// SplitKeywords parses a comma-separated keyword list.
func SplitKeywords(s string) []string {
	return NormalizeKeywords(strings.Split(s, ","))
}

func truncate(c []domain.Candidate, n int) []domain.Candidate {
	if len(c) > n {
		return c[:n]
	}
	return c
}
