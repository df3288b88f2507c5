package rdf

import (
	"fmt"
	"strings"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// RenderMarkdown renders the human-readable page of a report scan.
func RenderMarkdown(r erpbrain.ReportScan) string {
	lines := []string{fmt.Sprintf("# Report: %s", r.Filename)}
	if r.Title != "" {
		lines = append(lines, fmt.Sprintf("**Title:** %s", r.Title))
	}

	lines = append(lines, "", "## SQL Fragments")
	if len(r.SQLFragments) == 0 {
		lines = append(lines, "*(No SQL fragments detected)*")
	}
	for _, sql := range r.SQLFragments {
		lines = append(lines, fmt.Sprintf("```sql\n%s\n```", sql))
	}

	lines = append(lines, "", "## Tables Referenced")
	if len(r.TablesReferenced) == 0 {
		lines = append(lines, "*(No tables detected)*")
	}
	for _, t := range r.TablesReferenced {
		lines = append(lines, fmt.Sprintf("- `%s`", t))
	}

	lines = append(lines, "", "## Notes", r.Note)
	return strings.Join(lines, "\n")
}
