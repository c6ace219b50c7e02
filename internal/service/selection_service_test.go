package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/intent"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/alexanderramin/skillprompt/internal/retrieval"
	"github.com/alexanderramin/skillprompt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanSlots_Portrait(t *testing.T) {
	in := intent.NewExtractor(nil).Extract("古装美女", domain.DomainPortrait)

	slots := PlanSlots(in)

	fields := make([]string, len(slots))
	for i, s := range slots {
		fields[i] = s.Field
	}
	assert.Equal(t, []string{
		"subject.ethnicity", "styling.makeup", "styling.clothing",
		"styling.hairstyle", "lighting.lighting_type", "technical.art_style",
	}, fields)
	assert.Equal(t, []string{"East", "Asian"}, slots[0].Keywords)
	assert.Equal(t, []string{"traditional", "chinese"}, slots[2].Keywords)
	assert.Equal(t, "hairstyles", slots[3].Category)
}

func TestPlanSlots_OtherDomains(t *testing.T) {
	art := PlanSlots(domain.Intent{Domain: domain.DomainArt, ArtType: "ink_wash", SubjectType: "landscape"})
	require.Len(t, art, 1)
	assert.Equal(t, []string{"ink", "wash", "landscape"}, art[0].Keywords)

	assert.Empty(t, PlanSlots(domain.Intent{Domain: domain.DomainVideo}))
}

func TestSelectForIntent_PreservesSlotOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	testutil.SeedElements(t, database,
		testutil.NewTestElement("soft_light", testutil.WithCategory("lighting_techniques"), testutil.WithKeywords("natural, soft")),
		testutil.NewTestElement("cn_makeup", testutil.WithKeywords("traditional chinese")),
		testutil.NewTestElement("hanfu", testutil.WithCategory("clothing_styles"), testutil.WithKeywords("traditional, chinese")),
		testutil.NewTestElement("east_asian", testutil.WithCategory("ethnicities"), testutil.WithKeywords("east asian")),
	)
	rec := &recordingObserver{}
	svc := NewSelectionService(retrieval.NewRetriever(repository.NewSQLiteCatalog(database), nil), rec)

	in := intent.NewExtractor(nil).Extract("古装美女", domain.DomainPortrait)
	results, err := svc.SelectForIntent(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, results, 6)

	names := map[string]string{}
	for _, r := range results {
		if r.Candidate != nil {
			names[r.Slot.Field] = r.Candidate.Name
		}
	}
	assert.Equal(t, map[string]string{
		"subject.ethnicity":      "east_asian",
		"styling.makeup":         "cn_makeup",
		"styling.clothing":       "hanfu",
		"lighting.lighting_type": "soft_light",
	}, names)
	assert.Equal(t, "subject.ethnicity", results[0].Slot.Field)
	assert.Equal(t, 4, rec.last().Fields["filled"])

	chosen := SelectedElements(results)
	require.Len(t, chosen, 4)
	assert.Equal(t, "ethnicities", chosen[0].Category)
	assert.Equal(t, "subject.ethnicity", chosen[0].FieldName)
}

type brokenCatalog struct{}

func (brokenCatalog) Open(context.Context) (repository.CatalogSession, error) {
	return nil, errors.New("catalog offline")
}

func TestSelectForIntent_PropagatesStorageFault(t *testing.T) {
	rec := &recordingObserver{}
	svc := NewSelectionService(retrieval.NewRetriever(brokenCatalog{}, nil), rec)

	_, err := svc.SelectForIntent(context.Background(), intent.NewExtractor(nil).Extract("", domain.DomainPortrait))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog offline")
	assert.False(t, rec.last().Success)
}
