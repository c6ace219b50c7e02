package compose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		template string
		limit    int
		want     string
	}{
		{"first segments", "soft window light, golden hour, warm tones", 2, "soft window light, golden hour"},
		{"mixed separators", "a; dewy skin. glossy lips, blush", 3, "dewy skin, glossy lips"},
		{"short segments dropped", "ok, no, fine print", 3, "fine print"},
		{"runes not bytes", "水墨画, 古风", 2, "水墨画"},
		{"empty", "", 3, ""},
		{"zero limit", "anything", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.template, tt.limit))
		})
	}
}

func TestCleanPrompt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  soft   light ,  , moody ", "Soft light , moody"},
		{",,, leading and trailing ,,", "Leading and trailing"},
		{"a,,,b", "A,b"},
		{"", ""},
		{" , , ", ""},
		{"ärger", "Ärger"},
		{"水墨", "水墨"},
	}
	for _, tt := range tests {
		got := CleanPrompt(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, got, CleanPrompt(got), "cleaning %q twice", tt.in)
	}
}

func TestFormatPromptOutput(t *testing.T) {
	out := FormatPromptOutput("Soft window light, golden hour", 1)

	rule := strings.Repeat("─", 50)
	assert.Equal(t, "✨ 生成的提示词\n"+rule+"\nSoft window light, golden hour\n"+rule+"\n📊 统计: 5 词 | 1 个元素", out)
}
