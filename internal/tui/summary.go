package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Printer renders run results, with lipgloss styling in ModeStyled.
type Printer struct {
	mode Mode
}

// NewPrinter creates a Printer for mode.
func NewPrinter(mode Mode) *Printer {
	return &Printer{mode: mode}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if p.mode != ModeStyled {
		return s
	}
	return style.Render(s)
}

// Summary renders one step's outcome and the inputs it skipped:
//
//	✓ forms: 12 found, 11 written (3 unchanged), 1 skipped → knowledge/forms
//	  ✗ broken_fmb.xml
func (p *Printer) Summary(step string, s erpbrain.RunSummary, output string) string {
	symbol, style := SymbolCheck, SuccessStyle
	if len(s.Skipped) > 0 {
		symbol, style = SymbolWarning, WarningStyle
	}

	line := fmt.Sprintf("%s %s: %d found, %d written", symbol, step, s.Found, s.Written)
	if s.Unchanged > 0 {
		line += fmt.Sprintf(" (%d unchanged)", s.Unchanged)
	}
	if len(s.Skipped) > 0 {
		line += fmt.Sprintf(", %d skipped", len(s.Skipped))
	}
	if output != "" {
		line += fmt.Sprintf(" %s %s", SymbolArrowRight, output)
	}

	var b strings.Builder
	b.WriteString(p.render(style, line))
	b.WriteString("\n")
	for _, name := range s.Skipped {
		b.WriteString(p.render(MutedStyle, fmt.Sprintf("  %s %s", SymbolCross, name)))
		b.WriteString("\n")
	}
	return b.String()
}

// Failure renders a step that stopped with err.
func (p *Printer) Failure(step string, err error) string {
	return p.render(ErrorStyle, fmt.Sprintf("%s %s: %v", SymbolCross, step, err)) + "\n"
}

// Done renders a one-line success message.
func (p *Printer) Done(msg string) string {
	return p.render(SuccessStyle, fmt.Sprintf("%s %s", SymbolCheck, msg)) + "\n"
}

// Title renders a heading.
func (p *Printer) Title(msg string) string {
	return p.render(TitleStyle, msg) + "\n"
}
