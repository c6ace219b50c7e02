package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DomainBadge returns a capitalized domain label in the domain's color.
func DomainBadge(d string) string {
	if d == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(d[:1]) + d[1:]
	return DomainStyle(domain.Domain(d)).Render(label)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// FormatScore renders a 0..10 reusability score or a 0..1 relevance score.
func FormatScore(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// kvLines renders label/value pairs with aligned labels, skipping empty values.
func kvLines(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if p[1] != "" {
			width = max(width, lipgloss.Width(p[0]))
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		if p[1] == "" {
			continue
		}
		pad := strings.Repeat(" ", width-lipgloss.Width(p[0]))
		fmt.Fprintf(&b, "  %s%s  %s\n", StyleDim.Render(p[0]), pad, p[1])
	}
	return b.String()
}
