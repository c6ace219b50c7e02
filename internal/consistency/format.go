package consistency

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillprompt/internal/domain"
)

var severityIcon = map[domain.Severity]string{
	domain.SeverityHigh:   "🔴",
	domain.SeverityMedium: "🟡",
	domain.SeverityLow:    "🟢",
}

// FormatReport renders the report as the text block returned to tool callers.
func FormatReport(r domain.Report) string {
	var b strings.Builder

	if r.IsConsistent {
		b.WriteString("✅ 一致性检查通过\n")
	} else {
		b.WriteString("⚠️ 发现一致性问题\n")
	}
	fmt.Fprintf(&b, "\n问题统计: 高 %d | 中 %d | 低 %d", r.HighSeverity, r.MediumSeverity, r.LowSeverity)

	if len(r.Issues) > 0 {
		b.WriteString("\n\n问题详情:")
		for _, is := range r.Issues {
			fmt.Fprintf(&b, "\n  %s [%s] %s", severityIcon[is.Severity], is.Type, is.Description)
		}
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n\n修正建议:")
		for _, s := range r.Suggestions {
			fmt.Fprintf(&b, "\n  • %s: %s → %s", s.Field, s.Current, s.Suggested)
			fmt.Fprintf(&b, "\n    原因: %s", s.Reason)
		}
	}

	return b.String()
}
