package compose

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	phraseSep      = regexp.MustCompile(`[,;.]`)
	repeatedCommas = regexp.MustCompile(`,(\s*,)+`)
)

// ExtractKeywords keeps the leading phrases of a template: it splits on
// commas, semicolons and periods, looks at the first limit segments, and
// keeps the trimmed ones longer than two characters.
func ExtractKeywords(template string, limit int) string {
	if template == "" || limit <= 0 {
		return ""
	}
	phrases := phraseSep.Split(template, -1)
	if len(phrases) > limit {
		phrases = phrases[:limit]
	}

	var kept []string
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) > 2 {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// CleanPrompt collapses whitespace and repeated commas, trims commas and
// spaces from both ends and upper-cases the first letter. It is idempotent.
func CleanPrompt(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = repeatedCommas.ReplaceAllString(s, ",")
	s = strings.Trim(s, ", ")
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

const ruleWidth = 50

// FormatPromptOutput frames a composed prompt with its word and element counts.
func FormatPromptOutput(prompt string, elementsUsed int) string {
	rule := strings.Repeat("─", ruleWidth)
	return strings.Join([]string{
		"✨ 生成的提示词",
		rule,
		prompt,
		rule,
		fmt.Sprintf("📊 统计: %d 词 | %d 个元素", len(strings.Fields(prompt)), elementsUsed),
	}, "\n")
}
