package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/skillprompt/internal/importer"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/alexanderramin/skillprompt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalogSchema() *importer.CatalogSchema {
	return &importer.CatalogSchema{
		Domains: []importer.DomainImport{{ID: "portrait", Name: "人像"}},
		Elements: []importer.ElementImport{
			{Domain: "portrait", Category: "makeup_styles", Name: "natural_glow", Template: "natural glowing skin"},
			{Domain: "portrait", Category: "styling.clothing", Name: "hanfu", Template: "silk hanfu"},
			{Domain: "art", Category: "art_styles", Name: "ink", Template: "ink wash painting"},
		},
	}
}

func TestCatalogImport_PersistsAndInvalidatesStats(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteElementRepo(database)
	stats := NewStatsService(repo, time.Minute)
	svc := NewCatalogService(repo, testutil.NewTestUoW(database), nil, stats)
	ctx := context.Background()

	before, err := stats.LibraryStats(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 0, before.TotalElements)

	res, err := svc.ImportFromSchema(ctx, validCatalogSchema())
	require.NoError(t, err)
	assert.Equal(t, 1, res.DomainCount)
	assert.Equal(t, 3, res.ElementCount)

	after, err := stats.LibraryStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, after.TotalElements)
	assert.Equal(t, "人像", after.Domains["portrait"].Name)

	clothes, err := repo.ListByDomainCategory(ctx, "portrait", "clothing_styles", 10)
	require.NoError(t, err)
	require.Len(t, clothes, 1, "dotted categories are stored canonically")
}

func TestCatalogImport_ReimportUpdatesInPlace(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteElementRepo(database)
	svc := NewCatalogService(repo, testutil.NewTestUoW(database), nil, nil)
	ctx := context.Background()

	_, err := svc.ImportFromSchema(ctx, validCatalogSchema())
	require.NoError(t, err)

	schema := validCatalogSchema()
	schema.Elements[0].Template = "dewy natural skin"
	_, err = svc.ImportFromSchema(ctx, schema)
	require.NoError(t, err)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	got, err := svc.Show(ctx, "natural_glow")
	require.NoError(t, err)
	assert.Equal(t, "dewy natural skin", got[0].Template)
}

func TestCatalogImport_RollbackOnElementFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteElementRepo(database)

	// Exec #1 = domain upsert, #2 and #3 = first two elements.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected element failure"),
	}
	svc := NewCatalogService(repo, failUoW, nil, nil)
	ctx := context.Background()

	_, err := svc.ImportFromSchema(ctx, validCatalogSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected element failure")
	assert.Contains(t, err.Error(), `importing element "hanfu"`)
	assert.Equal(t, 3, failUoW.Writes())

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, total, "no elements should exist after rollback")
}

func TestCatalogImport_ValidationErrors(t *testing.T) {
	database := testutil.NewTestDB(t)
	rec := &recordingObserver{}
	svc := NewCatalogService(repository.NewSQLiteElementRepo(database), testutil.NewTestUoW(database), nil, nil, rec)

	schema := validCatalogSchema()
	schema.Elements[0].Name = ""
	schema.Elements[2].Domain = "cooking"

	_, err := svc.ImportFromSchema(context.Background(), schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog validation failed (2 errors)")
	assert.Equal(t, 2, rec.last().Fields["validation_errors"])
}

func TestCatalogImport_FromFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(repository.NewSQLiteElementRepo(database), testutil.NewTestUoW(database), nil, nil)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"elements":[
		{"domain":"portrait","category":"hairstyles","name":"black_hair","ai_prompt_template":"black hair","keywords":["black","hair"]}
	]}`), 0o644))

	res, err := svc.Import(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ElementCount)

	_, err = svc.Import(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading catalog file")
}

func TestCatalogShow_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewCatalogService(repository.NewSQLiteElementRepo(database), testutil.NewTestUoW(database), nil, nil)

	_, err := svc.Show(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrElementNotFound))
}

func TestCatalogImport_DomainFailureUsesDefaultInjectedError(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteElementRepo(database)
	failUoW := &testutil.FailOnNthExecUoW{DB: database, FailOn: 1}
	svc := NewCatalogService(repo, failUoW, nil, nil)

	_, err := svc.ImportFromSchema(context.Background(), validCatalogSchema())
	require.ErrorIs(t, err, testutil.ErrInjectedWrite)
	assert.Equal(t, 1, failUoW.Writes())
}
