package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SelectedElement is an element the caller picked for checking or composition.
// Callers may label the category with a flat catalog name ("lighting_techniques")
// or a framework field name ("lighting.lighting_type"), and the template under
// either "template" or "ai_prompt_template".
type SelectedElement struct {
	ElementID        ElementID `json:"element_id,omitempty"`
	Category         string    `json:"category,omitempty"`
	FieldName        string    `json:"field_name,omitempty"`
	Name             string    `json:"name,omitempty"`
	Template         string    `json:"template,omitempty"`
	AIPromptTemplate string    `json:"ai_prompt_template,omitempty"`
}

// RawCategory returns the category label as supplied, before alias resolution.
func (e SelectedElement) RawCategory() string {
	return Coalesce(e.Category, e.FieldName)
}

// PromptTemplate returns whichever template field is set.
func (e SelectedElement) PromptTemplate() string {
	return Coalesce(e.Template, e.AIPromptTemplate)
}

// ElementID accepts either a JSON string or a JSON number.
type ElementID string

func (id *ElementID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ElementID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("element_id must be a string or number: %w", err)
	}
	*id = ElementID(n.String())
	return nil
}

// ParseSelectedElements decodes a JSON array of selected elements.
func ParseSelectedElements(raw string) ([]SelectedElement, error) {
	var elems []SelectedElement
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return nil, fmt.Errorf("parsing elements: %w", err)
	}
	return elems, nil
}

// ParseIntent decodes a JSON intent object.
func ParseIntent(raw string) (*Intent, error) {
	var in Intent
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, fmt.Errorf("parsing intent: %w", err)
	}
	return &in, nil
}
