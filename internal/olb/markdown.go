package olb

import (
	"fmt"
	"strings"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

const (
	// ProgramUnitPreview is how many characters of a program unit are shown.
	ProgramUnitPreview = 500

	// TriggerPreview is how many characters of a trigger are shown.
	TriggerPreview = 300
)

// Some exports escape line breaks more than once, leaving literal
// character references in attribute values after decoding.
var entityLeftovers = strings.NewReplacer(
	"&amp;#10;", "\n",
	"&amp;#x9;", "\t",
	"&#10;", "\n",
	"&#x9;", "\t",
)

// RenderMarkdown renders the human-readable page of an object library.
func RenderMarkdown(lib erpbrain.ObjectLibrary) string {
	lines := []string{
		fmt.Sprintf("# Object Library: %s", lib.Name),
		fmt.Sprintf("**Source:** `%s`", lib.SourceFile),
		fmt.Sprintf("**Object Count:** %d", lib.ObjectCount),
		"",
	}

	for _, tab := range lib.Tabs {
		lines = append(lines, fmt.Sprintf("## Tab: `%s`", tab.Name))
		if tab.Label != "" {
			lines = append(lines, fmt.Sprintf("**Label:** %s", tab.Label))
		}
		lines = append(lines, fmt.Sprintf("**Objects:** %d", tab.ObjectCount), "")

		if len(tab.ProgramUnits) > 0 {
			lines = append(lines, "### Program Units")
			for _, pu := range tab.ProgramUnits {
				lines = append(lines,
					fmt.Sprintf("#### `%s` (%s)", pu.Name, pu.Type),
					"```plsql",
					preview(pu.Text, ProgramUnitPreview),
					"```",
					"",
				)
			}
		}

		if len(tab.Triggers) > 0 {
			lines = append(lines, "### Triggers")
			for _, trig := range tab.Triggers {
				lines = append(lines,
					fmt.Sprintf("#### `%s`", trig.Name),
					"```plsql",
					preview(trig.TriggerText, TriggerPreview),
					"```",
					"",
				)
			}
		}

		if len(tab.Items) > 0 {
			lines = append(lines,
				"### Items",
				"| Name | Type | Label | Canvas | Column |",
				"|------|------|-------|--------|--------|",
			)
			for _, item := range tab.Items {
				lines = append(lines, fmt.Sprintf("| `%s` | %s | %s | `%s` | `%s` |",
					item.Name, item.ItemType, strings.ReplaceAll(item.Label, "|", `\|`), item.Canvas, item.ColumnName))
			}
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}

// preview decodes entity leftovers and cuts text to limit characters,
// appending "..." when something was cut.
func preview(text string, limit int) string {
	runes := []rune(entityLeftovers.Replace(text))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "..."
}
