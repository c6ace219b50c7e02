package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// MarshalPretty renders v as two-space indented JSON. Non-ASCII text and
// HTML-sensitive characters are written as-is.
func MarshalPretty(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
