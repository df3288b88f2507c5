package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireMarkdownFile validates that exactly one <file.md> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireMarkdownFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <file.md>

Usage: %s

Example:
  %s knowledge/forms/orders_fmb.md`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// NoArgs rejects positional arguments with a hint about --root.
func NoArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf(`accepts 0 arg(s), received %d

Inputs are located under --root, e.g.:
  %s --root ./erp`, len(args), cmd.CommandPath())
	}
	return nil
}
