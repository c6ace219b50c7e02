package rules

import (
	"fmt"
	"maps"
	"slices"
)

// Validate checks that every default is set and that each keyword table is
// usable. It returns all problems found.
func Validate(t *Tables) []error {
	var errs []error

	d := t.Defaults
	required := []struct {
		key, val string
	}{
		{"domain", d.Domain}, {"gender", d.Gender}, {"ethnicity", d.Ethnicity},
		{"age_range", d.AgeRange}, {"era", d.Era}, {"clothing", d.Clothing},
		{"hairstyle", d.Hairstyle}, {"makeup", d.Makeup}, {"lighting", d.Lighting},
		{"art_style", d.ArtStyle}, {"art_type", d.ArtType}, {"subject_type", d.SubjectType},
		{"design_type", d.DesignType}, {"product_style", d.ProductStyle},
	}
	for _, r := range required {
		if r.val == "" {
			errs = append(errs, fmt.Errorf("defaults.%s is required", r.key))
		}
	}

	tables := []struct {
		name  string
		table KeywordTable
	}{
		{"domains", t.Domains}, {"genders", t.Genders}, {"ethnicities", t.Ethnicities},
		{"age_ranges", t.AgeRanges}, {"eras", t.Eras}, {"clothing", t.Clothing},
		{"makeup", t.Makeup}, {"lighting", t.Lighting}, {"directors", t.Directors},
		{"art_styles", t.ArtStyles}, {"art_types", t.ArtTypes},
		{"subject_types", t.SubjectTypes}, {"design_types", t.DesignTypes},
		{"product_styles", t.ProductStyles},
	}
	for _, tb := range tables {
		errs = append(errs, validateTable(tb.name, tb.table)...)
	}

	// Map keys are walked in sorted order so repeated runs report the same errors.
	for _, eth := range slices.Sorted(maps.Keys(t.EthnicityFeatures)) {
		f := t.EthnicityFeatures[eth]
		if len(f.IncompatibleEyeColors) > 0 && len(f.TypicalEyeColors) == 0 {
			errs = append(errs, fmt.Errorf("ethnicity_features.%s: incompatible eye colors need at least one typical color", eth))
		}
	}
	for _, era := range slices.Sorted(maps.Keys(t.EraCompatibility)) {
		c := t.EraCompatibility[era]
		if len(c.IncompatibleLighting) > 0 && len(c.CompatibleLighting) == 0 {
			errs = append(errs, fmt.Errorf("era_compatibility.%s: incompatible lighting needs at least one compatible style", era))
		}
	}
	for _, field := range slices.Sorted(maps.Keys(t.CategoryAliases)) {
		if t.CategoryAliases[field] == "" {
			errs = append(errs, fmt.Errorf("category_aliases.%s: empty category", field))
		}
	}

	return errs
}

func validateTable(name string, table KeywordTable) []error {
	var errs []error
	if len(table) == 0 {
		errs = append(errs, fmt.Errorf("%s: table is empty", name))
	}
	seen := make(map[string]bool, len(table))
	for i, set := range table {
		if set.Value == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: value is required", name, i))
			continue
		}
		if seen[set.Value] {
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate value %q", name, i, set.Value))
		}
		seen[set.Value] = true
		if len(set.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("%s[%d]: %q has no keywords", name, i, set.Value))
		}
		for j, kw := range set.Keywords {
			if kw == "" {
				errs = append(errs, fmt.Errorf("%s[%d].keywords[%d]: empty keyword", name, i, j))
			}
		}
	}
	return errs
}
