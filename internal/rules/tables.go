// Package rules holds the keyword dictionaries and compatibility tables that
// drive intent extraction, consistency checking and category alias resolution.
//
// Tables are parsed once and shared by reference. Nothing in this package or its
// callers mutates a *Tables after Load returns.
package rules

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var embeddedRules []byte

// KeywordSet maps a resolved value to the keywords that select it.
type KeywordSet struct {
	Value    string   `yaml:"value"`
	Keywords []string `yaml:"keywords"`
}

// KeywordTable is an ordered list of keyword sets.
type KeywordTable []KeywordSet

// Match returns the value of the first set with a keyword contained in lowerText.
// lowerText must already be lower-cased.
func (t KeywordTable) Match(lowerText string) (string, bool) {
	for _, set := range t {
		if set.hits(lowerText, true) > 0 {
			return set.Value, true
		}
	}
	return "", false
}

// Resolve is Match with a fallback value.
func (t KeywordTable) Resolve(lowerText, fallback string) string {
	if v, ok := t.Match(lowerText); ok {
		return v
	}
	return fallback
}

// Tally counts, per set and in table order, how many keywords occur in lowerText.
func (t KeywordTable) Tally(lowerText string) []int {
	counts := make([]int, len(t))
	for i, set := range t {
		counts[i] = set.hits(lowerText, false)
	}
	return counts
}

func (s KeywordSet) hits(lowerText string, stopAtFirst bool) int {
	n := 0
	for _, kw := range s.Keywords {
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			n++
			if stopAtFirst {
				return n
			}
		}
	}
	return n
}

// Defaults are the fallback values for every categorical intent field.
type Defaults struct {
	Domain       string `yaml:"domain"`
	Gender       string `yaml:"gender"`
	Ethnicity    string `yaml:"ethnicity"`
	AgeRange     string `yaml:"age_range"`
	Era          string `yaml:"era"`
	Clothing     string `yaml:"clothing"`
	Hairstyle    string `yaml:"hairstyle"`
	Makeup       string `yaml:"makeup"`
	Lighting     string `yaml:"lighting"`
	ArtStyle     string `yaml:"art_style"`
	ArtType      string `yaml:"art_type"`
	SubjectType  string `yaml:"subject_type"`
	DesignType   string `yaml:"design_type"`
	ProductStyle string `yaml:"product_style"`
}

// EraStyling is the styling an era implies when the request names none.
type EraStyling struct {
	Clothing string `yaml:"clothing"`
	Makeup   string `yaml:"makeup"`
}

// EthnicityFeatures lists typical and implausible eye/hair colors.
type EthnicityFeatures struct {
	TypicalEyeColors       []string `yaml:"typical_eye_colors"`
	TypicalHairColors      []string `yaml:"typical_hair_colors"`
	IncompatibleEyeColors  []string `yaml:"incompatible_eye_colors"`
	IncompatibleHairColors []string `yaml:"incompatible_hair_colors"`
}

// EraCompatibility lists lighting and clothing that fit or clash with an era.
type EraCompatibility struct {
	CompatibleLighting   []string `yaml:"compatible_lighting"`
	IncompatibleLighting []string `yaml:"incompatible_lighting"`
	CompatibleClothing   []string `yaml:"compatible_clothing"`
	IncompatibleClothing []string `yaml:"incompatible_clothing"`
}

// Tables is the full, immutable rule set.
type Tables struct {
	Domains       KeywordTable `yaml:"domains"`
	Genders       KeywordTable `yaml:"genders"`
	Ethnicities   KeywordTable `yaml:"ethnicities"`
	AgeRanges     KeywordTable `yaml:"age_ranges"`
	Eras          KeywordTable `yaml:"eras"`
	Clothing      KeywordTable `yaml:"clothing"`
	Makeup        KeywordTable `yaml:"makeup"`
	Lighting      KeywordTable `yaml:"lighting"`
	Directors     KeywordTable `yaml:"directors"`
	ArtStyles     KeywordTable `yaml:"art_styles"`
	ArtTypes      KeywordTable `yaml:"art_types"`
	SubjectTypes  KeywordTable `yaml:"subject_types"`
	DesignTypes   KeywordTable `yaml:"design_types"`
	ProductStyles KeywordTable `yaml:"product_styles"`

	DirectorLighting  map[string]string     `yaml:"director_lighting"`
	Defaults          Defaults              `yaml:"defaults"`
	EraStyling        map[string]EraStyling `yaml:"era_styling"`
	ClothingHairstyle map[string]string     `yaml:"clothing_hairstyle"`

	EthnicityFeatures map[string]EthnicityFeatures `yaml:"ethnicity_features"`
	EraCompatibility  map[string]EraCompatibility  `yaml:"era_compatibility"`

	CategoryAliases map[string]string `yaml:"category_aliases"`
}

// CanonicalCategory resolves a framework field name to its catalog category.
// Names without an alias are returned unchanged.
func (t *Tables) CanonicalCategory(name string) string {
	if c, ok := t.CategoryAliases[name]; ok {
		return c
	}
	return name
}

// FieldCategory resolves a dotted framework field name. Unlike CanonicalCategory
// it reports a miss instead of echoing the input.
func (t *Tables) FieldCategory(field string) (string, bool) {
	c, ok := t.CategoryAliases[field]
	return c, ok
}

// Parse decodes and validates a YAML rule document.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding rule tables: %w", err)
	}
	if errs := Validate(&t); len(errs) > 0 {
		return nil, fmt.Errorf("invalid rule tables (%d errors): %w", len(errs), errors.Join(errs...))
	}
	return &t, nil
}

// LoadFile reads a rule document from disk.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule tables: %w", err)
	}
	return Parse(data)
}

var loadDefault = sync.OnceValues(func() (*Tables, error) {
	return Parse(embeddedRules)
})

// Default returns the rule tables compiled into the binary.
func Default() *Tables {
	t, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("embedded rule tables: %v", err))
	}
	return t
}
