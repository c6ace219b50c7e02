package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalPretty(t *testing.T) {
	out, err := MarshalPretty(map[string]string{"name": "古装 <美女> & co"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"古装 <美女> & co\"\n}", out)

	_, err = MarshalPretty(func() {})
	assert.Error(t, err)
}

func TestMarshalPretty_IssueUsesElementIDKey(t *testing.T) {
	out, err := MarshalPretty(Issue{Type: "ethnicity_eye_mismatch", Severity: SeverityHigh, ElementID: "e1"})
	require.NoError(t, err)
	assert.Contains(t, out, `"element_id": "e1"`)
	assert.NotContains(t, out, `"element":`)
}
