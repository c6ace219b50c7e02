package importer

import (
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/rules"
	"github.com/google/uuid"
)

// DefaultReusabilityScore is stored when an element omits its score.
const DefaultReusabilityScore = 5.0

// elementNamespace seeds name-based IDs so re-importing a file without
// explicit element_ids updates rows instead of duplicating them.
var elementNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("skillprompt:element"))

// GeneratedCatalog is a validated seed file converted to domain objects.
type GeneratedCatalog struct {
	Domains  []domain.DomainInfo
	Elements []*domain.Element
}

// Convert transforms a validated CatalogSchema into domain objects ready for
// persistence. Call ValidateCatalogSchema first; Convert assumes the schema is
// valid. Dotted field names used as categories are stored under their catalog
// category.
func Convert(schema *CatalogSchema, tables *rules.Tables) *GeneratedCatalog {
	if tables == nil {
		tables = rules.Default()
	}

	gen := &GeneratedCatalog{
		Domains:  make([]domain.DomainInfo, 0, len(schema.Domains)),
		Elements: make([]*domain.Element, 0, len(schema.Elements)),
	}
	for _, d := range schema.Domains {
		gen.Domains = append(gen.Domains, domain.DomainInfo{
			ID:   d.ID,
			Name: domain.Coalesce(d.Name, d.ID),
		})
	}

	for _, e := range schema.Elements {
		category := tables.CanonicalCategory(e.Category)
		id := e.ElementID
		if id == "" {
			id = ElementIDFor(e.Domain, category, e.Name)
		}
		score := DefaultReusabilityScore
		if e.ReusabilityScore != nil {
			score = *e.ReusabilityScore
		}
		gen.Elements = append(gen.Elements, &domain.Element{
			ID:               id,
			Domain:           domain.Domain(e.Domain),
			Category:         category,
			Name:             e.Name,
			ChineseName:      e.ChineseName,
			Template:         strings.TrimSpace(e.Template),
			Keywords:         joinKeywords(e.Keywords),
			ReusabilityScore: score,
		})
	}
	return gen
}

// ElementIDFor derives the stable ID used for elements imported without one.
func ElementIDFor(domainID, category, name string) string {
	return uuid.NewSHA1(elementNamespace, []byte(domainID+"/"+category+"/"+name)).String()
}

func joinKeywords(kw Keywords) string {
	var parts []string
	for _, k := range kw {
		for _, p := range strings.Split(k, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
	}
	return strings.Join(parts, ", ")
}
