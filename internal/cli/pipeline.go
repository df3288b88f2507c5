package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vvka-141/erpbrain/internal/checksum"
	"github.com/vvka-141/erpbrain/internal/files/filesystem"
	"github.com/vvka-141/erpbrain/internal/files/scanner"
	"github.com/vvka-141/erpbrain/internal/files/writer"
	"github.com/vvka-141/erpbrain/internal/forms"
	"github.com/vvka-141/erpbrain/internal/knowledge"
	"github.com/vvka-141/erpbrain/internal/logging"
	"github.com/vvka-141/erpbrain/internal/menus"
	"github.com/vvka-141/erpbrain/internal/olb"
	"github.com/vvka-141/erpbrain/internal/plsql"
	"github.com/vvka-141/erpbrain/internal/rdf"
	"github.com/vvka-141/erpbrain/internal/tui"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// pipeline wires the extractors of one project root.
type pipeline struct {
	layout  knowledge.Layout
	fs      filesystem.FileSystemProvider
	calc    checksum.Calculator
	scanner erpbrain.FileScanner
	writer  *writer.Writer
	logger  erpbrain.Logger
	printer *tui.Printer
	out     io.Writer
	strict  bool
}

func newPipeline(root string, strict bool, fsProvider filesystem.FileSystemProvider, logger erpbrain.Logger, out io.Writer, mode tui.Mode) *pipeline {
	calc := checksum.New()
	return &pipeline{
		layout:  knowledge.New(root),
		fs:      fsProvider,
		calc:    calc,
		scanner: scanner.NewScannerWithFS(calc, fsProvider),
		writer:  writer.New(fsProvider, calc, logger),
		logger:  logger,
		printer: tui.NewPrinter(mode),
		out:     out,
		strict:  strict,
	}
}

// defaultPipeline builds the pipeline for the global flags on the real
// filesystem, logging to stderr.
func defaultPipeline() *pipeline {
	return newPipeline(
		rootFlags.root,
		rootFlags.strict,
		filesystem.NewOSFileSystem(),
		logging.NewConsoleLogger(rootFlags.verbose),
		os.Stderr,
		tui.DetectMode(os.Stderr),
	)
}

// step is one extraction stage with its output directory.
type step struct {
	name   string
	output string
	run    func(ctx context.Context) (erpbrain.RunSummary, error)
}

func (p *pipeline) formsStep() step {
	e := forms.NewExtractor(p.scanner, p.writer, p.logger)
	return step{"forms", p.layout.Forms(), func(ctx context.Context) (erpbrain.RunSummary, error) {
		return e.Run(ctx, p.layout.FormsXML(), p.layout.Forms())
	}}
}

func (p *pipeline) plsqlStep() step {
	e := plsql.NewExtractor(p.scanner, p.writer, p.calc, p.logger)
	return step{"plsql", p.layout.Procedures(), func(ctx context.Context) (erpbrain.RunSummary, error) {
		return e.Run(ctx, p.layout.Forms(), p.layout.Procedures())
	}}
}

func (p *pipeline) menusStep() step {
	e := menus.NewExtractor(p.scanner, p.writer, p.logger)
	return step{"menus", p.layout.Menus(), func(ctx context.Context) (erpbrain.RunSummary, error) {
		return e.Run(ctx, p.layout.MenusXML(), p.layout.Menus())
	}}
}

func (p *pipeline) olbStep() step {
	e := olb.NewExtractor(p.scanner, p.writer, p.logger)
	return step{"olb", p.layout.Libs(), func(ctx context.Context) (erpbrain.RunSummary, error) {
		return e.Run(ctx, p.layout.OLBXML(), p.layout.Libs())
	}}
}

// reportsStep scans source, or raw/reports_rdf when source is empty.
// A missing default directory scans as empty; a missing explicit source
// is ErrInputNotFound.
func (p *pipeline) reportsStep(source string) step {
	explicit := source != ""
	if explicit {
		source = p.layout.Resolve(source)
	} else {
		source = p.layout.ReportsRDF()
	}
	e := rdf.NewExtractor(p.scanner, p.writer, p.logger)
	return step{"reports", p.layout.Reports(), func(ctx context.Context) (erpbrain.RunSummary, error) {
		if explicit {
			info, err := p.fs.Stat(source)
			if errors.Is(err, fs.ErrNotExist) {
				return erpbrain.RunSummary{}, fmt.Errorf("%w: %s", erpbrain.ErrInputNotFound, source)
			}
			if err != nil {
				return erpbrain.RunSummary{}, fmt.Errorf("failed to stat %s: %w", source, err)
			}
			if !info.IsDir() {
				return erpbrain.RunSummary{}, fmt.Errorf("%w: %s is not a directory", erpbrain.ErrInvalidConfig, source)
			}
		}
		return e.Run(ctx, source, p.layout.Reports())
	}}
}

// runStep runs s and prints its summary. Skipped inputs only fail the
// step in strict mode.
func (p *pipeline) runStep(ctx context.Context, s step) error {
	summary, err := s.run(ctx)
	if err != nil {
		fmt.Fprint(p.out, p.printer.Failure(s.name, err))
		return fmt.Errorf("%s: %w", s.name, err)
	}

	fmt.Fprint(p.out, p.printer.Summary(s.name, summary, s.output))
	if p.strict {
		if err := summary.Err(); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// runAll runs every step even when an earlier one failed and returns the
// first error.
func (p *pipeline) runAll(ctx context.Context, steps ...step) error {
	var first error
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.runStep(ctx, s); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// extractAll runs the XML extractors and the PL/SQL step under one heading.
func (p *pipeline) extractAll(ctx context.Context) error {
	fmt.Fprint(p.out, p.printer.Title("erpbrain extract all: "+p.layout.Root))
	return p.runAll(ctx, p.formsStep(), p.plsqlStep(), p.menusStep(), p.olbStep())
}

// importForms copies prepared form records into knowledge/forms.
func (p *pipeline) importForms(ctx context.Context) error {
	im := forms.NewImporter(p.scanner, p.writer, p.logger)
	res, err := im.Import(ctx, p.layout.SchemaForms(), p.layout.AnalysisForms(), p.layout.Forms())
	if err != nil {
		fmt.Fprint(p.out, p.printer.Failure("forms import", err))
		return fmt.Errorf("forms import: %w", err)
	}

	fmt.Fprint(p.out, p.printer.Done(fmt.Sprintf("forms import: copied %d JSON, %d MD (%d files in %s)",
		res.JSONCopied, res.MarkdownCopied, res.TotalInTarget, p.layout.Forms())))
	return nil
}
