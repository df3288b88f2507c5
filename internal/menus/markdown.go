package menus

import (
	"fmt"
	"strings"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// RenderMarkdown renders the human-readable page of a menu module.
func RenderMarkdown(m erpbrain.MenuModule) string {
	lines := []string{
		fmt.Sprintf("# Menu Module: %s", m.Name),
		fmt.Sprintf("**Source:** `%s`", m.SourceFile),
	}
	if m.MainMenu != "" {
		lines = append(lines, fmt.Sprintf("**Main Menu:** `%s`", m.MainMenu))
	}
	lines = append(lines, "")

	for _, menu := range m.Menus {
		lines = append(lines, fmt.Sprintf("## Menu: `%s`", menu.Name), "")
		if len(menu.Items) == 0 {
			lines = append(lines, "*(No items)*", "")
			continue
		}
		lines = append(lines,
			"| Name | Label | Type | Submenu | Command | Visible |",
			"|------|-------|------|---------|---------|---------|",
		)
		for _, item := range menu.Items {
			visible := "✗"
			if item.VisibleInMenu {
				visible = "✓"
			}
			lines = append(lines, fmt.Sprintf("| `%s` | %s | %s | `%s` | %s | %s |",
				item.Name, escapePipes(item.Label), item.Type, item.Submenu, item.CommandType, visible))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
