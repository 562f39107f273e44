package framework

import (
	"fmt"
	"strings"
)

// ReportCLI renders the aggregated report of the last run as a single
// multi-line string ready for printing: a header naming the tested method,
// one summary line combining the pictogram bar with either "<n> succeeded"
// or per-mark counts "(of <total>)", and one detail line per outcome at or
// above Skipped severity.
func (m *MethodTest) ReportCLI() string {
	statement := m.Statement()

	lines := []string{fmt.Sprintf("Test %s:", m.caption)}

	var brief string
	if statement.OverallMark() == Succeeded {
		brief = fmt.Sprintf("%d %s", len(statement), Succeeded.Verb())
	} else {
		var parts []string
		for _, total := range statement.Totals(Skipped, false) {
			parts = append(parts, fmt.Sprintf("%d %s", total.Num, total.Verb))
		}
		brief = fmt.Sprintf("%s (of %d)", strings.Join(parts, ", "), len(statement))
	}
	lines = append(lines, fmt.Sprintf("%s = %s", statement.Bar(), brief))

	for _, rec := range statement.Filter(Skipped) {
		line := fmt.Sprintf(": %s = %s", rec.TID, rec.Mark.Verb())
		if rec.Msg.IsDefined() && rec.Msg.StringValue() != "" {
			line += ", " + rec.Msg.StringValue()
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
