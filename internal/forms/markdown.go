package forms

import (
	"fmt"
	"strings"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// RenderMarkdown renders the human-readable page of a form.
func RenderMarkdown(form erpbrain.Form) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Form: %s\n\n", form.FormName)
	fmt.Fprintf(&b, "**Source:** %s\n\n", form.SourceFile)

	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- **Blocks:** %d\n", len(form.Blocks))
	fmt.Fprintf(&b, "- **Items:** %d\n", len(form.Items))
	fmt.Fprintf(&b, "- **Data Sources:** %d\n", len(form.DataSources))
	fmt.Fprintf(&b, "- **Triggers:** %d\n", len(form.Triggers))
	fmt.Fprintf(&b, "- **Program Units:** %d\n\n", len(form.ProgramUnits))

	b.WriteString("## Blocks\n")
	for _, block := range form.Blocks {
		fmt.Fprintf(&b, "\n### %s (%s)\n", block.Name, block.Type)
		if len(block.Items) == 0 {
			b.WriteString("*No items*\n")
			continue
		}
		b.WriteString("| Item | Type | Prompt | Data Type |\n")
		b.WriteString("|------|------|--------|-----------|\n")
		for _, item := range block.Items {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", item.Name, item.Type, item.Prompt, item.DataType)
		}
	}

	if len(form.DataSources) > 0 {
		b.WriteString("\n## Data Sources\n")
		for _, ds := range form.DataSources {
			fmt.Fprintf(&b, "\n### %s\n", ds.Name)
			fence(&b, "sql", ds.SQL)
		}
	}

	if len(form.Triggers) > 0 {
		b.WriteString("\n## Triggers\n")
		for _, t := range form.Triggers {
			fmt.Fprintf(&b, "\n### %s (%s)\n", t.Name, t.Type)
			fence(&b, "plsql", t.Code)
		}
	}

	if len(form.ProgramUnits) > 0 {
		b.WriteString("\n## Program Units\n")
		for _, u := range form.ProgramUnits {
			fmt.Fprintf(&b, "\n### %s (%s)\n", u.Name, u.Type)
			fence(&b, "plsql", u.Code)
		}
	}

	return b.String()
}

func fence(b *strings.Builder, lang, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(b, "```%s\n%s\n```\n", lang, body)
}
