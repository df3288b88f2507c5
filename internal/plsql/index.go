package plsql

import (
	"fmt"
	"strings"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// IndexEntry pairs a unit with the file it was written to.
type IndexEntry struct {
	Unit erpbrain.PLSQLUnit
	File string
}

// TypeCount is the number of units of one type.
type TypeCount struct {
	Type  string
	Count int
}

// CountByType counts units per type in first-seen order.
func CountByType(entries []IndexEntry) []TypeCount {
	var counts []TypeCount
	pos := make(map[string]int)
	for _, e := range entries {
		i, ok := pos[e.Unit.Type]
		if !ok {
			i = len(counts)
			pos[e.Unit.Type] = i
			counts = append(counts, TypeCount{Type: e.Unit.Type})
		}
		counts[i].Count++
	}
	return counts
}

// Duplicates groups entries whose normalized code checksum matches.
// Only groups with two or more members are returned, in first-seen order.
func Duplicates(entries []IndexEntry) [][]IndexEntry {
	var order []string
	groups := make(map[string][]IndexEntry)
	for _, e := range entries {
		sum := e.Unit.CodeChecksum
		if sum == "" {
			continue
		}
		if _, ok := groups[sum]; !ok {
			order = append(order, sum)
		}
		groups[sum] = append(groups[sum], e)
	}

	var out [][]IndexEntry
	for _, sum := range order {
		if len(groups[sum]) > 1 {
			out = append(out, groups[sum])
		}
	}
	return out
}

// RenderIndex renders INDEX.md for the procedures directory.
func RenderIndex(entries []IndexEntry) string {
	var b strings.Builder

	b.WriteString("# PL/SQL Procedures Index\n\n")
	fmt.Fprintf(&b, "**Total PL/SQL units:** %d\n", len(entries))
	b.WriteString("**Source:** Extracted from parsed Oracle Forms\n\n")

	b.WriteString("## By Type\n")
	for _, c := range CountByType(entries) {
		fmt.Fprintf(&b, "- **%s:** %d\n", c.Type, c.Count)
	}

	b.WriteString("\n## Units\n")
	for _, e := range entries {
		u := e.Unit
		fmt.Fprintf(&b, "\n### %s (%s)\n", u.Name, u.Type)
		fmt.Fprintf(&b, "- **Form:** %s\n", u.Form)
		if u.TriggerType != "" {
			fmt.Fprintf(&b, "- **Trigger Type:** %s\n", u.TriggerType)
		}
		if len(u.TablesReferenced) > 0 {
			fmt.Fprintf(&b, "- **Tables Referenced:** %s\n", strings.Join(u.TablesReferenced, ", "))
		}
		fmt.Fprintf(&b, "- **Source File:** %s\n", e.File)
	}

	dups := Duplicates(entries)
	if len(dups) > 0 {
		b.WriteString("\n## Duplicated Code\n")
		for _, group := range dups {
			fmt.Fprintf(&b, "\n### Checksum `%s`\n", shortChecksum(group[0].Unit.CodeChecksum))
			for _, e := range group {
				fmt.Fprintf(&b, "- %s (`%s`)\n", e.Unit.Name, e.File)
			}
		}
	}

	return b.String()
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
