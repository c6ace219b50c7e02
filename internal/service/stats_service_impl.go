package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/patrickmn/go-cache"
)

const statsCacheKey = "library-stats"

type statsService struct {
	elements repository.ElementRepo
	cache    *cache.Cache
	observer UseCaseObserver
}

// NewStatsService caches the full catalog breakdown for ttl. A non-positive
// ttl disables caching.
func NewStatsService(elements repository.ElementRepo, ttl time.Duration, observers ...UseCaseObserver) StatsService {
	var c *cache.Cache
	if ttl > 0 {
		c = cache.New(ttl, 2*ttl)
	}
	return &statsService{
		elements: elements,
		cache:    c,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *statsService) LibraryStats(ctx context.Context, domainID string) (stats *domain.LibraryStats, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"domain": domainID, "cached": false}
	defer func() {
		observeStep(ctx, s.observer, "library-stats", startedAt, err, fields)
	}()

	full, hit := s.cached()
	if !hit {
		full, err = s.load(ctx)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			s.cache.SetDefault(statsCacheKey, full)
		}
	}
	fields["cached"] = hit

	return filterStats(full, domainID), nil
}

func (s *statsService) Invalidate() {
	if s.cache != nil {
		s.cache.Delete(statsCacheKey)
	}
}

func (s *statsService) cached() (*domain.LibraryStats, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache.Get(statsCacheKey)
	if !ok {
		return nil, false
	}
	return v.(*domain.LibraryStats), true
}

func (s *statsService) load(ctx context.Context) (*domain.LibraryStats, error) {
	total, err := s.elements.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading library stats: %w", err)
	}
	counts, err := s.elements.CountByDomain(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading library stats: %w", err)
	}

	stats := &domain.LibraryStats{
		TotalElements: total,
		Domains:       make(map[string]domain.DomainSummary, len(counts)),
	}
	for _, c := range counts {
		stats.Domains[c.DomainID] = domain.DomainSummary{
			Name:         domain.Coalesce(c.Name, c.DomainID),
			ElementCount: c.ElementCount,
		}
	}
	return stats, nil
}

// filterStats copies the cached value so callers never share its map.
func filterStats(full *domain.LibraryStats, domainID string) *domain.LibraryStats {
	out := &domain.LibraryStats{
		TotalElements: full.TotalElements,
		Domains:       make(map[string]domain.DomainSummary),
	}
	for id, d := range full.Domains {
		if domainID == "" || id == domainID {
			out.Domains[id] = d
		}
	}
	return out
}
