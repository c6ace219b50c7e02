package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/skillprompt/internal/compose"
	"github.com/alexanderramin/skillprompt/internal/consistency"
	"github.com/alexanderramin/skillprompt/internal/db"
	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/intent"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/alexanderramin/skillprompt/internal/retrieval"
	"github.com/alexanderramin/skillprompt/internal/service"
	"github.com/alexanderramin/skillprompt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	testutil.SeedElements(t, database,
		testutil.NewTestElement("east_asian", testutil.WithCategory("ethnicities"),
			testutil.WithKeywords("east asian"), testutil.WithTemplate("East Asian features")),
		testutil.NewTestElement("cn_makeup", testutil.WithKeywords("traditional, chinese"),
			testutil.WithTemplate("traditional chinese makeup, red lips")),
		testutil.NewTestElement("soft_light", testutil.WithCategory("lighting_techniques"),
			testutil.WithKeywords("natural, soft"), testutil.WithTemplate("soft natural window light")),
	)

	elements := repository.NewSQLiteElementRepo(database)
	retriever := retrieval.NewRetriever(repository.NewSQLiteCatalog(database), nil)
	stats := service.NewStatsService(elements, time.Minute)

	return &App{
		Pipeline: service.NewPipelineService(
			intent.NewExtractor(nil),
			retriever,
			consistency.NewChecker(nil),
			compose.NewComposer(nil, nil),
		),
		Selection:     service.NewSelectionService(retriever),
		Stats:         stats,
		Catalog:       service.NewCatalogService(elements, db.NewSQLiteUnitOfWork(database), nil, stats),
		IsInteractive: func() bool { return true },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, "", args...)
}

func executeCmdWithInput(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func TestIntentCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "intent", "古装美女，水墨风格")
	require.NoError(t, err)
	assert.Contains(t, out, "INTENT")
	assert.Contains(t, out, "East_Asian")
	assert.Contains(t, out, "ancient")

	out, err = executeCmd(t, app, "intent", "--json", "--domain", "art", "水墨山水画")
	require.NoError(t, err)
	var in domain.Intent
	require.NoError(t, json.Unmarshal([]byte(out), &in))
	assert.Equal(t, domain.DomainArt, in.Domain)
	assert.Equal(t, "水墨山水画", in.RawRequest)
}

func TestIntentCmd_ReadsPipedStdin(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	out, err := executeCmdWithInput(t, app, "luxury product shot\n", "intent", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"domain": "product"`)

	_, err = executeCmdWithInput(t, app, "  ", "intent")
	assert.EqualError(t, err, "request text is required")
}

func TestIntentCmd_RequiresTextWhenInteractive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "intent")
	assert.EqualError(t, err, "request text is required")
}

func TestQueryCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "query", "portrait", "makeup_styles", "-k", "traditional,chinese")
	require.NoError(t, err)
	assert.Contains(t, out, "cn_makeup")
	assert.Contains(t, out, "1.00")

	out, err = executeCmd(t, app, "query", "portrait", "hairstyles")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching elements.")

	out, err = executeCmd(t, app, "query", "portrait", "makeup_styles", "--json")
	require.NoError(t, err)
	var got []domain.Candidate
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 1)

	_, err = executeCmd(t, app, "query", "portrait")
	assert.Error(t, err)
}

func TestQueryFieldCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "query-field", "lighting.lighting_type", "--keywords", "soft")
	require.NoError(t, err)
	assert.Contains(t, out, "soft_light")
}

func TestCheckCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "check",
		"--elements", `[{"category":"eye_types","name":"blue_eyes","template":"blue eyes"}]`,
		"--intent", `{"subject":{"ethnicity":"East_Asian"}}`)
	require.NoError(t, err)
	assert.Contains(t, out, "✖ Inconsistent")
	assert.Contains(t, out, "eye_color: blue_eyes → brown")

	out, err = executeCmd(t, app, "check",
		"--elements", `[{"category":"lighting_techniques","name":"neon_glow"}]`,
		"--request", "古装美女", "--json")
	require.NoError(t, err)
	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.IsConsistent)
	assert.Equal(t, 1, report.MediumSeverity)

	_, err = executeCmd(t, app, "check", "--elements", `[{`)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "JSON parse error: "))

	_, err = executeCmd(t, app, "check")
	assert.EqualError(t, err, "--elements is required")

	_, err = executeCmd(t, app, "check", "--elements", "[]", "--intent", "{}", "--request", "x")
	assert.Error(t, err)
}

func TestComposeCmd(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "chosen.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"category":"makeup_styles","template":"traditional chinese makeup"},
		{"field_name":"lighting.lighting_type","ai_prompt_template":"soft window light"}
	]`), 0o644))

	out, err := executeCmd(t, app, "compose", "--elements", "@"+path, "--raw", "--mode", "simple", "--subject", "A young woman")
	require.NoError(t, err)
	prompt := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(prompt, "A young woman"))
	assert.NotContains(t, prompt, compose.QualityTags)

	out, err = executeCmd(t, app, "compose", "--elements", "@"+path)
	require.NoError(t, err)
	assert.Contains(t, out, "PROMPT")
	assert.Contains(t, out, "2 elements")
	assert.Contains(t, out, compose.QualityTags)

	out, err = executeCmdWithInput(t, app, `[{"category":"makeup_styles","template":"red lips"}]`, "compose", "--elements", "-", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "Red lips")

	_, err = executeCmd(t, app, "compose", "--elements", "@"+filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading")
}

func TestStatsCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 3 elements")

	out, err = executeCmd(t, app, "stats", "portrait", "--json")
	require.NoError(t, err)
	var stats domain.LibraryStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.Domains["portrait"].ElementCount)
	assert.Len(t, stats.Domains, 1)
}

func TestSelectCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "select", "古装美女")
	require.NoError(t, err)
	assert.Contains(t, out, "SELECTION")
	assert.Contains(t, out, "cn_makeup")
	assert.Contains(t, out, "PROMPT")

	out, err = executeCmd(t, app, "select", "--json", "古装美女")
	require.NoError(t, err)
	var got selectOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.DomainPortrait, got.Intent.Domain)
	require.NotEmpty(t, got.Elements)
	assert.Equal(t, "east_asian", got.Elements[0].Name)
	assert.Contains(t, got.Prompt, "East Asian features")

	out, err = executeCmd(t, app, "select", "video with camera movement")
	require.NoError(t, err)
	assert.Contains(t, out, "No catalog fields are planned")
}

func TestCatalogCmds(t *testing.T) {
	app := testApp(t)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"domains": [{"id": "art", "name": "艺术"}],
		"elements": [
			{"domain": "art", "category": "ink_wash_techniques", "name": "splash_ink", "chinese_name": "泼墨", "ai_prompt_template": "splashed ink technique", "keywords": "ink, splash"}
		]
	}`), 0o644))

	out, err := executeCmd(t, app, "catalog", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 domains and 1 elements")

	out, err = executeCmd(t, app, "catalog", "show", "splash_ink")
	require.NoError(t, err)
	assert.Contains(t, out, "泼墨")
	assert.Contains(t, out, "splashed ink technique")

	out, err = executeCmd(t, app, "stats", "art", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "艺术"`, "import invalidates the stats cache")

	_, err = executeCmd(t, app, "catalog", "show", "ghost")
	assert.True(t, errors.Is(err, repository.ErrElementNotFound))
}

func TestServeCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "serve")
	assert.EqualError(t, err, "tool server is not configured")

	called := false
	app.Serve = func(ctx context.Context) error {
		called = true
		return nil
	}
	out, err := executeCmd(t, app, "serve")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, out, "Waiting for an MCP client")

	app.IsInteractive = func() bool { return false }
	out, err = executeCmd(t, app, "serve")
	require.NoError(t, err)
	assert.Empty(t, out, "nothing is written when a client is attached")
}
