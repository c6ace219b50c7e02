package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsWideRunes(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"古装", "x"}, {"ab", "y"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "A     B", lines[0])
	assert.Equal(t, "────  ─", lines[1])
	assert.Equal(t, "古装  x", lines[2])
	assert.Equal(t, "ab    y", lines[3])

	assert.Empty(t, RenderTable(nil, nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab…", Truncate("abcd", 3))
	assert.Equal(t, "古装…", Truncate("古装美女", 3))
	assert.Equal(t, "…", Truncate("abcd", 1))
	assert.Equal(t, "abcd", Truncate("abcd", 0))
}

func TestDomainBadge(t *testing.T) {
	assert.Equal(t, "Portrait", stripANSI(DomainBadge("portrait")))
	assert.Equal(t, "Fashion", stripANSI(DomainBadge("fashion")))
	assert.Equal(t, "--", stripANSI(DomainBadge("")))
}

func TestHeader_UnderlineMatchesWidth(t *testing.T) {
	out := stripANSI(Header("问题"))
	assert.Equal(t, "问题\n────", out)
}

func TestFormatIntent(t *testing.T) {
	out := stripANSI(FormatIntent(domain.Intent{
		Domain:     domain.DomainPortrait,
		RawRequest: "古装美女",
		Subject:    &domain.SubjectIntent{Gender: "female", Ethnicity: "East_Asian", AgeRange: "young_adult"},
		Scene:      &domain.SceneIntent{Era: "ancient"},
	}))

	assert.Contains(t, out, "INTENT")
	assert.Contains(t, out, "Portrait")
	assert.Contains(t, out, "East_Asian")
	assert.Contains(t, out, "ancient")
	assert.NotContains(t, out, "director")

	art := stripANSI(FormatIntent(domain.Intent{Domain: domain.DomainArt, ArtType: "ink_wash"}))
	assert.Contains(t, art, "ink_wash")

	bare := stripANSI(FormatIntent(domain.Intent{Domain: domain.DomainVideo}))
	assert.Contains(t, bare, "no structured fields")
}

func TestFormatCandidates(t *testing.T) {
	out := stripANSI(FormatCandidates("makeup_styles", []domain.Candidate{
		{Name: "cn_makeup", ChineseName: "中式妆容", Template: strings.Repeat("x", 80), RelevanceScore: 1, ReusabilityScore: 8.5},
	}))
	assert.Contains(t, out, "MAKEUP_STYLES")
	assert.Contains(t, out, "cn_makeup")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "8.50")
	assert.Contains(t, out, strings.Repeat("x", templateColumnMax-1)+"…")

	assert.Contains(t, FormatCandidates("x", nil), "No matching elements.")
}

func TestFormatReport(t *testing.T) {
	ok := stripANSI(FormatReport(domain.NewReport(nil, nil)))
	assert.Contains(t, ok, "✔ Consistent")
	assert.NotContains(t, ok, "ISSUES")

	bad := stripANSI(FormatReport(domain.NewReport(
		[]domain.Issue{{Type: "ethnicity_eye_color", Severity: domain.SeverityHigh, Description: "Eye color \"blue\" is unusual"}},
		[]domain.Suggestion{{Field: "eye_color", Current: "blue", Suggested: "brown", Reason: "typical"}},
	)))
	assert.Contains(t, bad, "✖ Inconsistent")
	assert.Contains(t, bad, "high 1 · medium 0 · low 0")
	assert.Contains(t, bad, "● HIGH")
	assert.Contains(t, bad, "[ethnicity_eye_color]")
	assert.Contains(t, bad, "eye_color: blue → brown")
}

func TestFormatPrompt(t *testing.T) {
	out := stripANSI(FormatPrompt("Soft light, red lips", 2))
	assert.Contains(t, out, "PROMPT")
	assert.Contains(t, out, "Soft light, red lips")
	assert.Contains(t, out, "4 words · 2 elements")

	assert.Contains(t, stripANSI(FormatPrompt("", 0)), "(empty prompt)")
}

func TestFormatSelection(t *testing.T) {
	out := stripANSI(FormatSelection([]SelectionRow{
		{Field: "styling.makeup", Category: "makeup_styles", Name: "cn_makeup", Template: "red lips"},
		{Field: "styling.hairstyle", Category: "hairstyles"},
	}))
	assert.Contains(t, out, "cn_makeup")
	assert.Contains(t, out, "--")
}

func TestFormatStats(t *testing.T) {
	out := stripANSI(FormatStats(&domain.LibraryStats{
		TotalElements: 3,
		Domains: map[string]domain.DomainSummary{
			"portrait": {Name: "Portrait", ElementCount: 2},
			"art":      {Name: "Art", ElementCount: 1},
		},
	}))
	assert.Contains(t, out, "Total: 3 elements")
	assert.Less(t, strings.Index(out, "Art"), strings.Index(out, "Portrait"), "domains sorted by id")
}

func TestFormatElementShow(t *testing.T) {
	out := stripANSI(FormatElementShow(&domain.Element{
		ID: "e-1", Domain: domain.DomainPortrait, Category: "makeup_styles",
		Name: "cn_makeup", ChineseName: "中式妆容", Template: "red lips", ReusabilityScore: 7,
	}))
	assert.Contains(t, out, "cn_makeup")
	assert.Contains(t, out, "中式妆容")
	assert.Contains(t, out, "TEMPLATE")
	assert.Contains(t, out, "red lips")
	assert.Contains(t, out, "7.00")
}
