package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vvka-141/erpbrain/internal/tui"
)

const previewWrap = 80

var showCmd = &cobra.Command{
	Use:   "show <file.md>",
	Short: "Render a generated Markdown page in the terminal",
	Long: `Render a knowledge Markdown page with terminal styling. When stdout is not a
terminal (pipes, redirects, CI), the raw Markdown is printed unchanged.

Examples:
  erpbrain show knowledge/forms/orders_fmb.md
  erpbrain show knowledge/procedures/INDEX.md | less`,
	Args: RequireMarkdownFile,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		wrap := min(tui.TerminalWidth(os.Stdout, previewWrap), previewWrap)
		return renderMarkdown(cmd.OutOrStdout(), string(data), tui.DetectMode(os.Stdout), wrap)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// renderMarkdown writes md to w, styled with glamour in ModeStyled and
// wrapped at wrap columns.
func renderMarkdown(w io.Writer, md string, mode tui.Mode, wrap int) error {
	if mode != tui.ModeStyled {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
