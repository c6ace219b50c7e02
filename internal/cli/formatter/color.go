package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// domainColors gives each catalog domain a stable badge color.
var domainColors = map[domain.Domain]lipgloss.Color{
	domain.DomainPortrait: ColorPurple,
	domain.DomainArt:      ColorAqua,
	domain.DomainDesign:   ColorBlue,
	domain.DomainProduct:  ColorYellow,
	domain.DomainVideo:    ColorOrange,
}

// DomainStyle returns the badge style for a domain; unknown domains are plain.
func DomainStyle(d domain.Domain) lipgloss.Style {
	c, ok := domainColors[d]
	if !ok {
		return lipgloss.NewStyle().Foreground(ColorFg)
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}

// RelevanceStyle colors a 0..1 keyword relevance score: full matches green,
// partial matches yellow.
func RelevanceStyle(score float64) lipgloss.Style {
	switch {
	case score >= 1:
		return StyleGreen
	case score > 0:
		return StyleYellow
	default:
		return StyleDim
	}
}

// SeverityStyle returns the lipgloss style for an issue severity.
func SeverityStyle(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityHigh:
		return StyleRed
	case domain.SeverityMedium:
		return StyleYellow
	case domain.SeverityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SeverityBadge returns a colored severity indicator such as "● HIGH".
func SeverityBadge(sev domain.Severity) string {
	label := strings.ToUpper(string(sev))
	if label == "" {
		label = "UNKNOWN"
	}
	return SeverityStyle(sev).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
