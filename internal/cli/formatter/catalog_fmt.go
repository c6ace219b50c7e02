package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
)

// FormatStats renders per-domain element counts sorted by domain id.
func FormatStats(stats *domain.LibraryStats) string {
	ids := make([]string, 0, len(stats.Domains))
	for id := range stats.Domains {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	headers := []string{"DOMAIN", "NAME", "ELEMENTS"}
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		d := stats.Domains[id]
		rows = append(rows, []string{DomainBadge(id), d.Name, fmt.Sprintf("%d", d.ElementCount)})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n" + Bold(fmt.Sprintf("Total: %d elements", stats.TotalElements)))
	return RenderBox("Library", b.String())
}

// FormatElementShow renders a catalog element detail card.
func FormatElementShow(e *domain.Element) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(e.Name), DomainBadge(string(e.Domain))))
	b.WriteString(kvLines([][2]string{
		{"id", e.ID},
		{"category", e.Category},
		{"中文名", e.ChineseName},
		{"keywords", e.Keywords},
		{"score", FormatScore(e.ReusabilityScore)},
	}))
	b.WriteString("\n" + Header("Template") + "\n")
	b.WriteString("  " + e.Template + "\n")
	return RenderBox("", b.String())
}
