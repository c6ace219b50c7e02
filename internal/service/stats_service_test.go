package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/alexanderramin/skillprompt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepo counts catalog reads made by the stats service.
type countingRepo struct {
	repository.ElementRepo
	countCalls int
}

func (c *countingRepo) Count(ctx context.Context) (int, error) {
	c.countCalls++
	return c.ElementRepo.Count(ctx)
}

func TestLibraryStats_TotalsAndFilter(t *testing.T) {
	database := testutil.NewTestDB(t)
	testutil.SeedElements(t, database,
		testutil.NewTestElement("a"),
		testutil.NewTestElement("b"),
		testutil.NewTestElement("c", testutil.WithDomain(domain.DomainArt), testutil.WithCategory("art_styles")),
	)
	svc := NewStatsService(repository.NewSQLiteElementRepo(database), time.Minute)
	ctx := context.Background()

	all, err := svc.LibraryStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalElements)
	assert.Len(t, all.Domains, 6)
	assert.Equal(t, domain.DomainSummary{Name: "Portrait", ElementCount: 2}, all.Domains["portrait"])

	art, err := svc.LibraryStats(ctx, "art")
	require.NoError(t, err)
	assert.Equal(t, 3, art.TotalElements, "total always covers the whole catalog")
	assert.Equal(t, map[string]domain.DomainSummary{"art": {Name: "Art", ElementCount: 1}}, art.Domains)

	none, err := svc.LibraryStats(ctx, "cooking")
	require.NoError(t, err)
	assert.Empty(t, none.Domains)
}

func TestLibraryStats_CachesUntilInvalidated(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := &countingRepo{ElementRepo: repository.NewSQLiteElementRepo(database)}
	rec := &recordingObserver{}
	svc := NewStatsService(repo, time.Minute, rec)
	ctx := context.Background()

	_, err := svc.LibraryStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, false, rec.last().Fields["cached"])

	// Results are copies; mutating one must not leak into the cache.
	first, err := svc.LibraryStats(ctx, "portrait")
	require.NoError(t, err)
	delete(first.Domains, "portrait")
	assert.Equal(t, true, rec.last().Fields["cached"])
	assert.Equal(t, 1, repo.countCalls)

	testutil.SeedElements(t, database, testutil.NewTestElement("new"))
	stale, err := svc.LibraryStats(ctx, "portrait")
	require.NoError(t, err)
	assert.Equal(t, 0, stale.TotalElements)
	assert.Contains(t, stale.Domains, "portrait")

	svc.Invalidate()
	fresh, err := svc.LibraryStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.TotalElements)
	assert.Equal(t, 2, repo.countCalls)
}

func TestLibraryStats_ZeroTTLDisablesCache(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := &countingRepo{ElementRepo: repository.NewSQLiteElementRepo(database)}
	svc := NewStatsService(repo, 0)

	for i := 0; i < 3; i++ {
		_, err := svc.LibraryStats(context.Background(), "")
		require.NoError(t, err)
	}
	svc.Invalidate()
	assert.Equal(t, 3, repo.countCalls)
}
