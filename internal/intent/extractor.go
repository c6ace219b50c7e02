// Package intent maps free-text requests onto a structured domain.Intent using
// ordered keyword tables. Extraction never fails: every field falls back to a
// configured default.
package intent

import (
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/rules"
)

// Extractor resolves intents against a fixed set of rule tables.
type Extractor struct {
	tables *rules.Tables
}

// NewExtractor creates an Extractor. A nil tables argument selects the
// embedded defaults.
func NewExtractor(tables *rules.Tables) *Extractor {
	if tables == nil {
		tables = rules.Default()
	}
	return &Extractor{tables: tables}
}

// Extract parses text into an Intent. hint is a domain name, or "auto"/"" to
// detect the domain from the text.
func (x *Extractor) Extract(text string, hint domain.Domain) domain.Intent {
	lower := strings.ToLower(text)

	in := domain.Intent{
		Domain:     x.resolveDomain(lower, hint),
		RawRequest: text,
	}

	switch in.Domain {
	case domain.DomainPortrait:
		x.fillPortrait(&in, lower)
	case domain.DomainArt:
		in.ArtType = x.tables.ArtTypes.Resolve(lower, x.tables.Defaults.ArtType)
		in.SubjectType = x.tables.SubjectTypes.Resolve(lower, x.tables.Defaults.SubjectType)
	case domain.DomainDesign:
		in.DesignType = x.tables.DesignTypes.Resolve(lower, x.tables.Defaults.DesignType)
	case domain.DomainProduct:
		in.ProductStyle = x.tables.ProductStyles.Resolve(lower, x.tables.Defaults.ProductStyle)
	}

	return in
}

func (x *Extractor) resolveDomain(lower string, hint domain.Domain) domain.Domain {
	h := domain.Domain(strings.ToLower(strings.TrimSpace(string(hint))))
	if h != "" && h != domain.DomainAuto {
		return h
	}
	return x.DetectDomain(lower)
}

// DetectDomain runs the keyword plurality vote over already lower-cased text.
// Ties go to the domain declared first; no hits yields the default domain.
func (x *Extractor) DetectDomain(lower string) domain.Domain {
	best, bestScore := -1, 0
	for i, n := range x.tables.Domains.Tally(lower) {
		if n > bestScore {
			best, bestScore = i, n
		}
	}
	if best < 0 {
		return domain.Domain(x.tables.Defaults.Domain)
	}
	return domain.Domain(x.tables.Domains[best].Value)
}

// fillPortrait resolves portrait fields. Later defaults read earlier resolved
// fields, so the order era, clothing, hairstyle, makeup is fixed.
func (x *Extractor) fillPortrait(in *domain.Intent, lower string) {
	t := x.tables
	d := t.Defaults

	in.Subject = &domain.SubjectIntent{
		Gender:    t.Genders.Resolve(lower, d.Gender),
		Ethnicity: t.Ethnicities.Resolve(lower, d.Ethnicity),
		AgeRange:  t.AgeRanges.Resolve(lower, d.AgeRange),
	}

	era := t.Eras.Resolve(lower, d.Era)
	in.Scene = &domain.SceneIntent{Era: era}

	implied := t.EraStyling[era]

	clothing, ok := t.Clothing.Match(lower)
	if !ok {
		clothing = domain.Coalesce(implied.Clothing, d.Clothing)
	}

	hairstyle := domain.Coalesce(t.ClothingHairstyle[clothing], d.Hairstyle)

	makeup, ok := t.Makeup.Match(lower)
	if !ok {
		makeup = domain.Coalesce(implied.Makeup, d.Makeup)
	}

	in.Styling = &domain.StylingIntent{
		Clothing:  clothing,
		Hairstyle: hairstyle,
		Makeup:    makeup,
	}

	in.Lighting = &domain.LightingIntent{
		LightingType: t.Lighting.Resolve(lower, d.Lighting),
	}

	// Director detection is the last lighting step and may override it.
	if director, ok := t.Directors.Match(lower); ok {
		in.Scene.DirectorStyle = director
		if forced, ok := t.DirectorLighting[director]; ok {
			in.Lighting.LightingType = forced
		}
	}

	in.Technical = &domain.TechnicalIntent{
		ArtStyle: t.ArtStyles.Resolve(lower, d.ArtStyle),
	}
}
