package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const asciiLogo = `                 _               _
  ___ _ __ _ __ | |__  _ __ __ _(_)_ __
 / _ \ '__| '_ \| '_ \| '__/ _' | | '_ \
|  __/ |  | |_) | |_) | | | (_| | | | | |
 \___|_|  | .__/|_.__/|_|  \__,_|_|_| |_|
          |_|`

var rootCmd = &cobra.Command{
	Use:   "erpbrain",
	Short: "Turn Oracle Forms/Reports exports into a knowledge base",
	Long: asciiLogo + `

erpbrain reads exported Oracle Forms, Menu and Object Library XML, compiled
Reports binaries and the remote database dictionary, and writes one JSON
record plus one Markdown page per artefact under knowledge/.

Inputs are read from raw/ under --root; outputs go to knowledge/ under the
same root. Re-running on unchanged input leaves every output untouched.

Exit Codes:
  0  - Success (skipped inputs are reported but tolerated without --strict)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration (missing endpoint or API key, bad owner)
  11 - Remote query failed
  12 - Input directory not found
  13 - Some inputs were skipped (--strict only)`,
	SilenceUsage: true,
}

type rootFlagValues struct {
	root    string
	verbose bool
	strict  bool
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.root, "root", ".",
		"Project root holding raw/ inputs and knowledge/ outputs")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false,
		"Enable verbose output for all commands")
	rootCmd.PersistentFlags().BoolVar(&rootFlags.strict, "strict", false,
		"Fail with exit code 13 when any input file was skipped")
}

// signalContext returns a context cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
