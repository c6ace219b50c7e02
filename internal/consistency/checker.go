// Package consistency flags cultural, historical and redundancy conflicts in
// a chosen set of elements.
package consistency

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
	"github.com/alexanderramin/skillprompt/internal/rules"
)

// Issue types.
const (
	IssueEthnicityEye  = "ethnicity_eye_mismatch"
	IssueEthnicityHair = "ethnicity_hair_mismatch"
	IssueEraLighting   = "era_lighting_mismatch"
	IssueEraClothing   = "era_clothing_mismatch"
	IssueDuplicate     = "duplicate"
)

// Catalog categories the rules inspect.
const (
	categoryEyes     = "eye_types"
	categoryHair     = "hairstyles"
	categoryLighting = "lighting_techniques"
	categoryClothing = "clothing_styles"
)

// Checker evaluates element sets against the ethnicity and era tables.
type Checker struct {
	tables *rules.Tables
}

// NewChecker creates a Checker. A nil tables argument selects the embedded
// defaults.
func NewChecker(tables *rules.Tables) *Checker {
	if tables == nil {
		tables = rules.Default()
	}
	return &Checker{tables: tables}
}

// Check runs every rule and aggregates the findings. in may be nil; missing
// ethnicity and era fall back to the extractor defaults.
func (c *Checker) Check(elements []domain.SelectedElement, in *domain.Intent) domain.Report {
	ethnicity := domain.Coalesce(in.Ethnicity(), c.tables.Defaults.Ethnicity)
	era := domain.Coalesce(in.Era(), c.tables.Defaults.Era)

	byCategory := c.indexByCategory(elements)

	var issues []domain.Issue
	var suggestions []domain.Suggestion

	if features, ok := c.tables.EthnicityFeatures[ethnicity]; ok {
		if eye, ok := byCategory[categoryEyes]; ok {
			name := strings.ToLower(eye.Name)
			for _, bad := range features.IncompatibleEyeColors {
				if !strings.Contains(name, bad) {
					continue
				}
				issues = append(issues, domain.Issue{
					Type:        IssueEthnicityEye,
					Severity:    domain.SeverityHigh,
					Description: fmt.Sprintf("Eye color %q is unusual for %s", name, ethnicity),
					ElementID:   string(eye.ElementID),
				})
				suggestions = append(suggestions, domain.Suggestion{
					Field:     "eye_color",
					Current:   name,
					Suggested: first(features.TypicalEyeColors),
					Reason:    fmt.Sprintf("%s typically has %s eyes", ethnicity, strings.Join(features.TypicalEyeColors, ", ")),
				})
			}
		}

		if hair, ok := byCategory[categoryHair]; ok {
			name := strings.ToLower(hair.Name)
			for _, bad := range features.IncompatibleHairColors {
				if strings.Contains(name, bad) {
					issues = append(issues, domain.Issue{
						Type:        IssueEthnicityHair,
						Severity:    domain.SeverityMedium,
						Description: fmt.Sprintf("Hair color %q is unusual for %s", name, ethnicity),
						ElementID:   string(hair.ElementID),
					})
				}
			}
		}
	}

	if compat, ok := c.tables.EraCompatibility[era]; ok {
		if light, ok := byCategory[categoryLighting]; ok {
			name := strings.ToLower(light.Name)
			for _, bad := range compat.IncompatibleLighting {
				if !strings.Contains(name, bad) {
					continue
				}
				issues = append(issues, domain.Issue{
					Type:        IssueEraLighting,
					Severity:    domain.SeverityMedium,
					Description: fmt.Sprintf("Lighting %q is anachronistic for %s era", name, era),
					ElementID:   string(light.ElementID),
				})
				suggestions = append(suggestions, domain.Suggestion{
					Field:     "lighting",
					Current:   name,
					Suggested: first(compat.CompatibleLighting),
					Reason:    fmt.Sprintf("%s era works better with %s lighting", era, strings.Join(head(compat.CompatibleLighting, 3), ", ")),
				})
			}
		}

		if cloth, ok := byCategory[categoryClothing]; ok {
			name := strings.ToLower(cloth.Name)
			for _, bad := range compat.IncompatibleClothing {
				if strings.Contains(name, bad) {
					issues = append(issues, domain.Issue{
						Type:        IssueEraClothing,
						Severity:    domain.SeverityHigh,
						Description: fmt.Sprintf("Clothing %q is anachronistic for %s era", name, era),
						ElementID:   string(cloth.ElementID),
					})
				}
			}
		}
	}

	issues = append(issues, duplicates(elements)...)

	return domain.NewReport(issues, suggestions)
}

// indexByCategory keys elements by canonical category. A later element
// replaces an earlier one in the same category.
func (c *Checker) indexByCategory(elements []domain.SelectedElement) map[string]domain.SelectedElement {
	m := make(map[string]domain.SelectedElement, len(elements))
	for _, e := range elements {
		m[c.tables.CanonicalCategory(e.RawCategory())] = e
	}
	return m
}

// duplicates reports every element whose template exactly matches an earlier
// one in input order.
func duplicates(elements []domain.SelectedElement) []domain.Issue {
	var issues []domain.Issue
	seen := make(map[string]struct{}, len(elements))
	for _, e := range elements {
		tmpl := e.PromptTemplate()
		if _, dup := seen[tmpl]; dup {
			issues = append(issues, domain.Issue{
				Type:        IssueDuplicate,
				Severity:    domain.SeverityLow,
				Description: "Duplicate element template detected",
				ElementID:   string(e.ElementID),
			})
			continue
		}
		seen[tmpl] = struct{}{}
	}
	return issues
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
