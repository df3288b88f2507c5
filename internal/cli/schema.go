package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/erpbrain/internal/config"
	"github.com/vvka-141/erpbrain/internal/retry"
	"github.com/vvka-141/erpbrain/internal/schemasync"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Pull table metadata from the remote query service",
	Long: `Pull the data dictionary of one schema owner through the HTTP query service
and write it to knowledge/tables.

The endpoint and API key are read from erpbrain.yaml (schema.endpoint,
schema.api_key), from ERPBRAIN_ENDPOINT / ERPBRAIN_API_KEY or from a .env
file in --root. Flags override both.`,
}

var schemaSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch columns and constraints of every table",
	Long: `List the tables of --owner, then fetch columns, primary/unique constraints
and foreign keys table by table. A table whose queries fail is recorded with
its error and the sync continues; a failing table list aborts the run.

Examples:
  erpbrain schema sync
  erpbrain schema sync --owner HR --limit 20
  erpbrain schema sync --retries 3 --timeout 1m`,
	Args: NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchemaCommand(cmd, false)
	},
}

var schemaTablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Fetch the table list only",
	Long: `List the tables of --owner and write them as stubs (no columns, empty
constraints) together with total_tables.`,
	Args: NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchemaCommand(cmd, true)
	},
}

type schemaFlagValues struct {
	owner    string
	output   string
	endpoint string
	limit    int
	retries  int
	timeout  time.Duration
}

var schemaFlags schemaFlagValues

func init() {
	schemaCmd.AddCommand(schemaSyncCmd, schemaTablesCmd)
	rootCmd.AddCommand(schemaCmd)

	for _, cmd := range []*cobra.Command{schemaSyncCmd, schemaTablesCmd} {
		cmd.Flags().StringVar(&schemaFlags.owner, "owner", "",
			"Schema owner (default: schema.owner, $ERPBRAIN_OWNER or "+erpbrain.DefaultSchemaOwner+")")
		cmd.Flags().IntVar(&schemaFlags.limit, "limit", 0,
			"Fetch at most this many tables (0 = all)")
		cmd.Flags().StringVar(&schemaFlags.output, "output", "",
			"Output JSON path, relative to --root (default: knowledge/tables/"+erpbrain.DefaultSchemaFileName+")")
		cmd.Flags().StringVar(&schemaFlags.endpoint, "endpoint", "",
			"Query service base URL (default: schema.endpoint or $ERPBRAIN_ENDPOINT)")
		cmd.Flags().DurationVar(&schemaFlags.timeout, "timeout", 0,
			"Timeout of a single query (default: schema.timeout or 30s)")
		cmd.Flags().IntVar(&schemaFlags.retries, "retries", 0,
			"Retry transient failures (5xx, 429, network) this many times")
	}
}

// schemaOptions is the resolved configuration of one schema run.
type schemaOptions struct {
	client   schemasync.ClientConfig
	owner    string
	limit    int
	output   string
	throttle time.Duration
	retries  int
}

// resolveSchemaOptions layers flags over env over erpbrain.yaml over defaults.
func resolveSchemaOptions(cmd *cobra.Command, p *pipeline) (schemaOptions, error) {
	cfg, err := config.Resolve(p.layout.Root)
	if err != nil {
		return schemaOptions{}, err
	}

	opts := schemaOptions{
		client: schemasync.ClientConfig{
			Endpoint: cfg.Schema.Endpoint,
			APIKey:   cfg.Schema.APIKey,
			Timeout:  cfg.Schema.Timeout,
		},
		owner:    cfg.Schema.Owner,
		limit:    schemaFlags.limit,
		output:   filepath.Join(p.layout.Tables(), erpbrain.DefaultSchemaFileName),
		throttle: cfg.Schema.Throttle,
		retries:  cfg.Schema.Retries,
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		opts.client.Endpoint = schemaFlags.endpoint
	}
	if flags.Changed("timeout") {
		opts.client.Timeout = schemaFlags.timeout
	}
	if flags.Changed("owner") {
		opts.owner = schemaFlags.owner
	}
	if flags.Changed("output") {
		opts.output = p.layout.Resolve(schemaFlags.output)
	}
	if flags.Changed("retries") {
		opts.retries = schemaFlags.retries
	}
	if opts.limit < 0 {
		return schemaOptions{}, fmt.Errorf("%w: --limit must not be negative", erpbrain.ErrInvalidConfig)
	}
	if opts.retries < 0 {
		return schemaOptions{}, fmt.Errorf("%w: --retries must not be negative", erpbrain.ErrInvalidConfig)
	}

	return opts, nil
}

func runSchemaCommand(cmd *cobra.Command, tablesOnly bool) error {
	p := defaultPipeline()
	opts, err := resolveSchemaOptions(cmd, p)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	return p.runSchema(ctx, opts, tablesOnly)
}

// runSchema fetches the schema described by opts and writes it to opts.output.
func (p *pipeline) runSchema(ctx context.Context, opts schemaOptions, tablesOnly bool) error {
	if err := schemasync.ValidateOwner(opts.owner); err != nil {
		return err
	}
	client, err := schemasync.NewClient(opts.client, p.logger)
	if err != nil {
		return err
	}

	backoff := retry.NewExponentialBackoff(opts.retries)
	if opts.retries > 0 {
		p.logger.Verbose("Retrying transient failures up to %d times (delay %s to %s, x%.1f, jitter %.0f%%)",
			backoff.MaxAttempts(), backoff.InitialDelay(), backoff.MaxDelay(), backoff.Multiplier(), backoff.Jitter()*100)
	}
	querier := schemasync.WithRetries(client, backoff, p.logger)
	syncer := schemasync.NewSyncer(querier, p.logger, schemasync.WithThrottle(opts.throttle))

	var schema erpbrain.Schema
	if tablesOnly {
		schema, err = syncer.Tables(ctx, opts.owner, opts.limit)
	} else {
		schema, err = syncer.Sync(ctx, opts.owner, opts.limit)
	}
	if err != nil {
		fmt.Fprint(p.out, p.printer.Failure("schema", err))
		return fmt.Errorf("schema %s: %w", opts.owner, err)
	}

	if _, err := p.writer.WriteJSON(opts.output, schema); err != nil {
		return err
	}

	p.logger.Info("Schema written to %s", opts.output)
	fmt.Fprint(p.out, p.printer.Done(fmt.Sprintf("schema: %d tables of %s → %s", len(schema.Tables), opts.owner, opts.output)))
	return nil
}
