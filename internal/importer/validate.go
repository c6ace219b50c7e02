package importer

import (
	"fmt"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/rules"
)

// ValidateCatalogSchema checks the seed file for errors before conversion.
// Returns a slice of all validation errors found. Name uniqueness is checked
// per canonical category, so tables is needed to resolve aliases.
func ValidateCatalogSchema(schema *CatalogSchema, tables *rules.Tables) []error {
	if tables == nil {
		tables = rules.Default()
	}
	var errs []error

	known := make(map[string]bool, len(domain.ValidDomains)+len(schema.Domains))
	for d := range domain.ValidDomains {
		known[d] = true
	}
	errs = append(errs, validateDomains(schema.Domains, known)...)

	if len(schema.Elements) == 0 {
		errs = append(errs, fmt.Errorf("elements: at least one element is required"))
	}
	errs = append(errs, validateElements(schema.Elements, known, tables)...)

	return errs
}

func validateDomains(domains []DomainImport, known map[string]bool) []error {
	var errs []error
	seen := make(map[string]bool, len(domains))
	for i, d := range domains {
		prefix := fmt.Sprintf("domains[%d]", i)
		if d.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
			continue
		}
		if d.ID == string(domain.DomainAuto) {
			errs = append(errs, fmt.Errorf("%s.id: %q is reserved", prefix, d.ID))
		}
		if seen[d.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate domain %q", prefix, d.ID))
		}
		seen[d.ID] = true
		known[d.ID] = true
	}
	return errs
}

func validateElements(elements []ElementImport, knownDomains map[string]bool, tables *rules.Tables) []error {
	var errs []error
	ids := make(map[string]int)
	names := make(map[string]int)

	for i, e := range elements {
		prefix := fmt.Sprintf("elements[%d]", i)

		if e.Domain == "" {
			errs = append(errs, fmt.Errorf("%s.domain is required", prefix))
		} else if !knownDomains[e.Domain] {
			errs = append(errs, fmt.Errorf("%s.domain: unknown domain %q (declare it under \"domains\")", prefix, e.Domain))
		}
		if e.Category == "" {
			errs = append(errs, fmt.Errorf("%s.category is required", prefix))
		}
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if e.Template == "" {
			errs = append(errs, fmt.Errorf("%s.ai_prompt_template is required", prefix))
		}
		if e.ReusabilityScore != nil && (*e.ReusabilityScore < 0 || *e.ReusabilityScore > 10) {
			errs = append(errs, fmt.Errorf("%s.reusability_score: %v out of range [0, 10]", prefix, *e.ReusabilityScore))
		}

		if e.ElementID != "" {
			if first, dup := ids[e.ElementID]; dup {
				errs = append(errs, fmt.Errorf("%s.element_id: %q already used by elements[%d]", prefix, e.ElementID, first))
			} else {
				ids[e.ElementID] = i
			}
		}

		if e.Domain != "" && e.Category != "" && e.Name != "" {
			category := tables.CanonicalCategory(e.Category)
			key := e.Domain + "/" + category + "/" + e.Name
			if first, dup := names[key]; dup {
				errs = append(errs, fmt.Errorf("%s.name: %q already defined in %s/%s by elements[%d]", prefix, e.Name, e.Domain, category, first))
			} else {
				names[key] = i
			}
		}
	}
	return errs
}
