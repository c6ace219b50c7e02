package compose

import (
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
)

var (
	subjectCategories   = []string{"ethnicities", "subject"}
	stylingCategories   = []string{"makeup_styles", "clothing_styles", "hairstyles"}
	lightingCategories  = []string{"lighting_techniques"}
	technicalCategories = []string{"art_styles", "camera_settings"}
)

// SectionStrategy emits subject, styling, lighting and technical sections in
// that order. In detailed mode, categories outside those sections join the
// technical section.
type SectionStrategy struct{}

func (SectionStrategy) Sections(g *Groups, opts Options) []string {
	subject := opts.SubjectDesc
	if subject == "" {
		subject = section(g, subjectCategories, opts.KeywordsLimit)
	}

	technical := section(g, technicalCategories, opts.KeywordsLimit)
	if opts.Mode == domain.ModeDetailed {
		technical = joinNonEmpty(technical, section(g, leftover(g), opts.KeywordsLimit))
	}

	return []string{
		subject,
		section(g, stylingCategories, opts.KeywordsLimit),
		section(g, lightingCategories, opts.KeywordsLimit),
		technical,
	}
}

func section(g *Groups, categories []string, limit int) string {
	var parts []string
	for _, cat := range categories {
		for _, e := range g.Get(cat) {
			if kw := ExtractKeywords(e.PromptTemplate(), limit); kw != "" {
				parts = append(parts, kw)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// leftover lists grouped categories no section claims, in first-seen order.
func leftover(g *Groups) []string {
	claimed := make(map[string]bool)
	for _, set := range [][]string{subjectCategories, stylingCategories, lightingCategories, technicalCategories} {
		for _, c := range set {
			claimed[c] = true
		}
	}
	var out []string
	for _, c := range g.Categories() {
		if !claimed[c] {
			out = append(out, c)
		}
	}
	return out
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
