package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectedElements_AcceptsBothTemplateKeys(t *testing.T) {
	elems, err := ParseSelectedElements(`[
		{"element_id": "a1", "category": "lighting_techniques", "template": "soft light"},
		{"element_id": 42, "field_name": "styling.makeup", "ai_prompt_template": "red lips"}
	]`)
	require.NoError(t, err)
	require.Len(t, elems, 2)

	assert.Equal(t, ElementID("a1"), elems[0].ElementID)
	assert.Equal(t, "lighting_techniques", elems[0].RawCategory())
	assert.Equal(t, "soft light", elems[0].PromptTemplate())

	assert.Equal(t, ElementID("42"), elems[1].ElementID)
	assert.Equal(t, "styling.makeup", elems[1].RawCategory())
	assert.Equal(t, "red lips", elems[1].PromptTemplate())
}

func TestParseSelectedElements_Malformed(t *testing.T) {
	_, err := ParseSelectedElements(`[{"element_id": }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing elements")

	_, err = ParseSelectedElements(`{"not": "an array"}`)
	assert.Error(t, err)
}

func TestParseIntent_PartialShape(t *testing.T) {
	in, err := ParseIntent(`{"subject": {"ethnicity": "East_Asian"}}`)
	require.NoError(t, err)
	assert.Equal(t, "East_Asian", in.Ethnicity())
	assert.Equal(t, "", in.Era())

	_, err = ParseIntent(`{"subject": `)
	assert.Error(t, err)
}

func TestNewReport_LowOnlyIsConsistent(t *testing.T) {
	r := NewReport([]Issue{{Type: "duplicate", Severity: SeverityLow}}, nil)
	assert.True(t, r.IsConsistent)
	assert.Equal(t, 1, r.TotalIssues)
	assert.Equal(t, 1, r.LowSeverity)
	assert.NotNil(t, r.Suggestions)

	r = NewReport([]Issue{
		{Type: "duplicate", Severity: SeverityLow},
		{Type: "era_lighting_mismatch", Severity: SeverityMedium},
	}, nil)
	assert.False(t, r.IsConsistent)
	assert.Equal(t, 1, r.MediumSeverity)
}

func TestNewCandidate_TruncatesLongTemplates(t *testing.T) {
	long := ""
	for i := 0; i < 250; i++ {
		long += "墨"
	}
	c := NewCandidate(&Element{ID: "x", Template: long}, 0.5)
	assert.Equal(t, CandidateTemplateMax, len([]rune(c.Template)))
	assert.Equal(t, 0.5, c.RelevanceScore)
}

func TestParseComposeMode(t *testing.T) {
	assert.Equal(t, ModeSimple, ParseComposeMode("simple"))
	assert.Equal(t, ModeDetailed, ParseComposeMode("detailed"))
	assert.Equal(t, ModeAuto, ParseComposeMode("whatever"))
	assert.True(t, ModeAuto.AppendsQualityTags())
	assert.False(t, ModeSimple.AppendsQualityTags())
}
