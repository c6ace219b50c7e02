package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CatalogSchema is the top-level JSON structure of a catalog seed file.
type CatalogSchema struct {
	Domains  []DomainImport  `json:"domains,omitempty"`
	Elements []ElementImport `json:"elements"`
}

// DomainImport declares or renames a catalog domain.
type DomainImport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ElementImport defines one element in the seed file. Keywords may be given
// as a JSON array or as a comma-separated string.
type ElementImport struct {
	ElementID        string   `json:"element_id,omitempty"`
	Domain           string   `json:"domain"`
	Category         string   `json:"category"`
	Name             string   `json:"name"`
	ChineseName      string   `json:"chinese_name,omitempty"`
	Template         string   `json:"ai_prompt_template"`
	Keywords         Keywords `json:"keywords,omitempty"`
	ReusabilityScore *float64 `json:"reusability_score,omitempty"`
}

// Keywords decodes from either ["a","b"] or "a, b".
type Keywords []string

func (k *Keywords) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*k = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("keywords must be a string or an array of strings")
	}
	*k = Keywords{s}
	return nil
}

// LoadCatalogSchema reads and parses a catalog seed file.
func LoadCatalogSchema(path string) (*CatalogSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalogSchema(data)
}

// ParseCatalogSchema parses seed JSON already in memory.
func ParseCatalogSchema(data []byte) (*CatalogSchema, error) {
	var schema CatalogSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &schema, nil
}
