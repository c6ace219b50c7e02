package domain

import (
	"strings"
	"unicode/utf8"
)

// CandidateTemplateMax bounds the template text carried by a Candidate.
const CandidateTemplateMax = 200

// Element is a single pre-authored prompt fragment stored in the catalog.
type Element struct {
	ID               string
	Domain           Domain
	Category         string
	Name             string
	ChineseName      string
	Template         string
	Keywords         string
	ReusabilityScore float64
}

// SearchText is the lower-cased text relevance scoring matches keywords against.
func (e *Element) SearchText() string {
	return strings.ToLower(strings.Join([]string{e.Name, e.ChineseName, e.Keywords, e.Template}, " "))
}

// Candidate is a retrieval result: a display projection of an Element plus the
// per-request relevance score.
type Candidate struct {
	ElementID        string  `json:"element_id"`
	Name             string  `json:"name"`
	ChineseName      string  `json:"chinese_name"`
	Template         string  `json:"template"`
	Keywords         string  `json:"keywords"`
	ReusabilityScore float64 `json:"reusability_score"`
	RelevanceScore   float64 `json:"relevance_score"`
}

// NewCandidate projects e into a Candidate, cutting long templates.
func NewCandidate(e *Element, relevance float64) Candidate {
	return Candidate{
		ElementID:        e.ID,
		Name:             e.Name,
		ChineseName:      e.ChineseName,
		Template:         truncateRunes(e.Template, CandidateTemplateMax),
		Keywords:         e.Keywords,
		ReusabilityScore: e.ReusabilityScore,
		RelevanceScore:   relevance,
	}
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// DomainInfo describes a catalog domain row.
type DomainInfo struct {
	ID   string
	Name string
}

// DomainCount is one row of the per-domain element breakdown.
type DomainCount struct {
	DomainID     string
	Name         string
	ElementCount int
}

// LibraryStats summarises catalog contents.
type LibraryStats struct {
	TotalElements int                      `json:"total_elements"`
	Domains       map[string]DomainSummary `json:"domains"`
}

type DomainSummary struct {
	Name         string `json:"name"`
	ElementCount int    `json:"element_count"`
}
