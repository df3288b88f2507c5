package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/erpbrain/internal/config"
)

var formsCmd = &cobra.Command{
	Use:   "forms",
	Short: "Extract and import Oracle Forms records",
}

var formsParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse raw/forms_xml/*.xml into knowledge/forms",
	Long: `Parse every Forms XML export in raw/forms_xml and write one JSON record and
one Markdown page per form to knowledge/forms. Files that fail to parse are
reported and skipped.`,
	Args: NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()
		p := defaultPipeline()
		return p.runStep(ctx, p.formsStep())
	},
}

var formsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy existing form records from raw/schema and raw/analysis",
	Long: `Copy form JSON records from raw/schema/forms and Markdown pages from
raw/analysis/forms into knowledge/forms, then list a sample of the result.
Missing source directories are skipped.`,
	Args: NoArgs,
	RunE: runFormsImport,
}

var plsqlCmd = &cobra.Command{
	Use:   "plsql",
	Short: "Lift triggers and program units out of knowledge/forms",
	Long: `Read the form JSON records in knowledge/forms and write one JSON file per
trigger and program unit to knowledge/procedures, plus an INDEX.md with
per-type counts and duplicated code.`,
	Args: NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()
		p := defaultPipeline()
		return p.runStep(ctx, p.plsqlStep())
	},
}

var menusCmd = &cobra.Command{
	Use:   "menus",
	Short: "Parse raw/menus_xml/*.xml into knowledge/menus",
	Args:  NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()
		p := defaultPipeline()
		return p.runStep(ctx, p.menusStep())
	},
}

var olbCmd = &cobra.Command{
	Use:   "olb",
	Short: "Parse raw/olb_xml/*.xml into knowledge/libs",
	Args:  NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()
		p := defaultPipeline()
		return p.runStep(ctx, p.olbStep())
	},
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Work with compiled Oracle Reports binaries",
}

var reportsSource string

var reportsScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Best-effort string scan of *.rdf binaries into knowledge/reports",
	Long: `Scan compiled report binaries for printable text, guess a title, collect SQL
fragments and referenced tables, and write one JSON record and one Markdown
page per report plus knowledge/reports/INDEX.json.

The binaries are read from raw/reports_rdf unless --source, reports.source
in erpbrain.yaml or ERPBRAIN_RDF_SOURCE says otherwise.`,
	Args: NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := reportsSource
		if !cmd.Flags().Changed("source") {
			cfg, err := config.Resolve(rootFlags.root)
			if err != nil {
				return err
			}
			source = cfg.Reports.Source
		}

		ctx, cancel := signalContext()
		defer cancel()
		p := defaultPipeline()
		return p.runStep(ctx, p.reportsStep(source))
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run several extraction steps at once",
}

var extractAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run forms parse, plsql, menus and olb in order",
	Long: `Run forms parse, plsql, menus and olb against one root. A failing step is
reported and the remaining steps still run; the first failure decides the
exit code.`,
	Args: NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()
		return defaultPipeline().extractAll(ctx)
	},
}

func init() {
	formsCmd.AddCommand(formsParseCmd, formsImportCmd)
	reportsCmd.AddCommand(reportsScanCmd)
	extractCmd.AddCommand(extractAllCmd)
	rootCmd.AddCommand(formsCmd, plsqlCmd, menusCmd, olbCmd, reportsCmd, extractCmd)

	reportsScanCmd.Flags().StringVar(&reportsSource, "source", "",
		"Directory holding the *.rdf binaries (default: raw/reports_rdf)")
}

func runFormsImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	p := defaultPipeline()
	return p.importForms(ctx)
}
