package menus

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/erpbrain/internal/files/writer"
	"github.com/vvka-141/erpbrain/internal/knowledge"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Extractor converts a directory of menu exports into menu records.
// Thread-Safety: NOT safe for concurrent Run calls on the same instance.
type Extractor struct {
	scanner erpbrain.FileScanner
	writer  *writer.Writer
	logger  erpbrain.Logger
}

// NewExtractor creates an Extractor. Panics if any dependency is nil.
func NewExtractor(scanner erpbrain.FileScanner, w *writer.Writer, logger erpbrain.Logger) *Extractor {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if w == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Extractor{scanner: scanner, writer: w, logger: logger}
}

// Run parses every *.xml file of inputDir and writes <name>.json and
// <name>.md into outputDir, where name is knowledge.BaseName of the module name.
// Exports without a MenuModule are warned about and skipped; malformed
// documents are logged as errors and skipped. A missing inputDir has no
// exports to convert.
func (e *Extractor) Run(ctx context.Context, inputDir, outputDir string) (erpbrain.RunSummary, error) {
	var summary erpbrain.RunSummary

	scan, err := e.scanner.ScanDirectory(inputDir, ".xml")
	if errors.Is(err, erpbrain.ErrInputNotFound) {
		e.logger.Info("No XML files found in %s", inputDir)
		return summary, nil
	}
	if err != nil {
		return summary, err
	}
	summary.Found = scan.Total()
	for _, u := range scan.Unreadable {
		e.logger.Error("Skipped %s: %v", u.Name, u.Err)
		summary.Skipped = append(summary.Skipped, u.Name)
	}
	if summary.Found == 0 {
		e.logger.Info("No XML files found in %s", inputDir)
		return summary, nil
	}
	e.logger.Info("Found %d menu XML files", summary.Found)

	if err := e.writer.EnsureDir(outputDir); err != nil {
		return summary, err
	}

	written := make(map[string]string)
	for _, file := range scan.Files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		e.logger.Verbose("Processing %s...", file.Name)
		module, err := Parse(file.Content, file.Path, file.Name)
		if err != nil {
			if errors.Is(err, erpbrain.ErrMissingRoot) {
				e.logger.Warn("No MenuModule found in %s", file.Name)
			} else {
				e.logger.Error("Skipped %s: %v", file.Name, err)
			}
			summary.Skipped = append(summary.Skipped, file.Name)
			continue
		}

		base := knowledge.BaseName(module.Name)
		if prev, ok := written[base]; ok {
			e.logger.Warn("%s overwrites %s.json written from %s", file.Name, base, prev)
		}
		written[base] = file.Name

		changed, err := e.write(outputDir, base, module)
		if err != nil {
			return summary, err
		}
		writer.Record(&summary, changed)
		e.logger.Verbose("  -> %s.json, %s.md", base, base)
	}

	e.logger.Info("Wrote %d menu modules to %s", summary.Written, outputDir)
	return summary, nil
}

func (e *Extractor) write(outputDir, base string, module erpbrain.MenuModule) (bool, error) {
	jsonChanged, err := e.writer.WriteJSON(filepath.Join(outputDir, base+".json"), module)
	if err != nil {
		return false, fmt.Errorf("menu %s: %w", module.Name, err)
	}
	mdChanged, err := e.writer.WriteText(filepath.Join(outputDir, base+".md"), RenderMarkdown(module))
	if err != nil {
		return false, fmt.Errorf("menu %s: %w", module.Name, err)
	}
	return jsonChanged || mdChanged, nil
}
