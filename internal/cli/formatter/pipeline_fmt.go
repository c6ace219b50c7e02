package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
)

const templateColumnMax = 48

// FormatIntent renders the populated fields of an intent as a detail card.
func FormatIntent(in domain.Intent) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n\n", Bold(Truncate(in.RawRequest, 60)), DomainBadge(string(in.Domain))))

	var pairs [][2]string
	if s := in.Subject; s != nil {
		pairs = append(pairs, [2]string{"gender", s.Gender}, [2]string{"ethnicity", s.Ethnicity}, [2]string{"age", s.AgeRange})
	}
	if s := in.Scene; s != nil {
		pairs = append(pairs, [2]string{"era", s.Era}, [2]string{"director", s.DirectorStyle})
	}
	if s := in.Styling; s != nil {
		pairs = append(pairs, [2]string{"clothing", s.Clothing}, [2]string{"hairstyle", s.Hairstyle}, [2]string{"makeup", s.Makeup})
	}
	if in.Lighting != nil {
		pairs = append(pairs, [2]string{"lighting", in.Lighting.LightingType})
	}
	if in.Technical != nil {
		pairs = append(pairs, [2]string{"art style", in.Technical.ArtStyle})
	}
	pairs = append(pairs,
		[2]string{"art type", in.ArtType},
		[2]string{"subject", in.SubjectType},
		[2]string{"design", in.DesignType},
		[2]string{"product", in.ProductStyle},
	)

	body := kvLines(pairs)
	if body == "" {
		body = Dim("  no structured fields for this domain\n")
	}
	b.WriteString(body)
	return RenderBox("Intent", b.String())
}

// FormatCandidates renders ranked candidates as a table.
func FormatCandidates(title string, candidates []domain.Candidate) string {
	if len(candidates) == 0 {
		return Dim("No matching elements.") + "\n"
	}

	headers := []string{"#", "NAME", "中文名", "RELEVANCE", "SCORE", "TEMPLATE"}
	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(c.Name),
			c.ChineseName,
			RelevanceStyle(c.RelevanceScore).Render(FormatScore(c.RelevanceScore)),
			Dim(FormatScore(c.ReusabilityScore)),
			Truncate(c.Template, templateColumnMax),
		})
	}
	return RenderBox(title, RenderTable(headers, rows))
}

// FormatReport renders a consistency report with severity colors.
func FormatReport(r domain.Report) string {
	var b strings.Builder

	if r.IsConsistent {
		b.WriteString(StyleGreen.Render("✔ Consistent"))
	} else {
		b.WriteString(StyleRed.Render("✖ Inconsistent"))
	}
	b.WriteString(Dim(fmt.Sprintf("  high %d · medium %d · low %d", r.HighSeverity, r.MediumSeverity, r.LowSeverity)))
	b.WriteString("\n")

	if len(r.Issues) > 0 {
		b.WriteString("\n" + Header("Issues") + "\n")
		for _, is := range r.Issues {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n", SeverityBadge(is.Severity), Dim("["+is.Type+"]"), is.Description))
		}
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n" + Header("Suggestions") + "\n")
		for _, s := range r.Suggestions {
			b.WriteString(fmt.Sprintf("  %s: %s → %s\n", Bold(s.Field), s.Current, StyleGreen.Render(s.Suggested)))
			b.WriteString("    " + Dim(s.Reason) + "\n")
		}
	}
	return b.String()
}

// FormatPrompt renders the composed prompt with word and element counts.
func FormatPrompt(prompt string, elementsUsed int) string {
	body := prompt
	if body == "" {
		body = Dim("(empty prompt)")
	}
	stats := Dim(fmt.Sprintf("%d words · %d elements", len(strings.Fields(prompt)), elementsUsed))
	return RenderBox("Prompt", body+"\n\n"+stats)
}

// SelectionRow is one line of the selection table.
type SelectionRow struct {
	Field    string
	Category string
	Name     string
	Template string
}

// FormatSelection renders the element chosen for each planned slot. Slots
// with no match show a dash.
func FormatSelection(rows []SelectionRow) string {
	headers := []string{"FIELD", "CATEGORY", "ELEMENT", "TEMPLATE"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		name := Bold(r.Name)
		if r.Name == "" {
			name = Dim("--")
		}
		out = append(out, []string{r.Field, Dim(r.Category), name, Truncate(r.Template, templateColumnMax)})
	}
	return RenderBox("Selection", RenderTable(headers, out))
}
