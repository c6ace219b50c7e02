package domain

// Issue is one detected incongruity between the chosen elements and the intent.
type Issue struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	ElementID   string   `json:"element_id"`
}

// Suggestion proposes a replacement value for a conflicting field.
type Suggestion struct {
	Field     string `json:"field"`
	Current   string `json:"current"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason"`
}

// Report is the outcome of a consistency check.
type Report struct {
	IsConsistent   bool         `json:"is_consistent"`
	TotalIssues    int          `json:"total_issues"`
	HighSeverity   int          `json:"high_severity"`
	MediumSeverity int          `json:"medium_severity"`
	LowSeverity    int          `json:"low_severity"`
	Issues         []Issue      `json:"issues"`
	Suggestions    []Suggestion `json:"suggestions"`
}

// NewReport aggregates issues and suggestions. A report is consistent when it
// holds no high or medium issues.
func NewReport(issues []Issue, suggestions []Suggestion) Report {
	if issues == nil {
		issues = []Issue{}
	}
	if suggestions == nil {
		suggestions = []Suggestion{}
	}
	r := Report{
		TotalIssues: len(issues),
		Issues:      issues,
		Suggestions: suggestions,
	}
	for _, is := range issues {
		switch is.Severity {
		case SeverityHigh:
			r.HighSeverity++
		case SeverityMedium:
			r.MediumSeverity++
		case SeverityLow:
			r.LowSeverity++
		}
	}
	r.IsConsistent = r.HighSeverity == 0 && r.MediumSeverity == 0
	return r
}
