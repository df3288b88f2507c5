package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

func TestRequireMarkdownFile(t *testing.T) {
	cmd := &cobra.Command{
		Use: "show <file.md>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireMarkdownFile(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <file.md>") {
			t.Errorf("expected error to contain 'missing required argument: <file.md>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		if err := RequireMarkdownFile(cmd, []string{"a.md"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns usage error when too many args", func(t *testing.T) {
		err := RequireMarkdownFile(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if got := erpbrain.ExitCodeForError(err); got != erpbrain.ExitUsageError {
			t.Errorf("expected exit code %d, got %d", erpbrain.ExitUsageError, got)
		}
	})
}

func TestNoArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "menus"}

	if err := NoArgs(cmd, nil); err != nil {
		t.Errorf("expected nil, got: %v", err)
	}

	err := NoArgs(cmd, []string{"raw/menus_xml"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := erpbrain.ExitCodeForError(err); got != erpbrain.ExitUsageError {
		t.Errorf("expected exit code %d, got %d", erpbrain.ExitUsageError, got)
	}
}
