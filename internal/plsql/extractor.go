package plsql

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/erpbrain/internal/checksum"
	"github.com/vvka-141/erpbrain/internal/files/writer"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Extractor writes one file per PL/SQL unit found in form records.
// Thread-Safety: NOT safe for concurrent Run calls on the same instance.
type Extractor struct {
	scanner    erpbrain.FileScanner
	writer     *writer.Writer
	calculator checksum.Calculator
	logger     erpbrain.Logger
}

// NewExtractor creates an Extractor. Panics if any dependency is nil.
func NewExtractor(scanner erpbrain.FileScanner, w *writer.Writer, calc checksum.Calculator, logger erpbrain.Logger) *Extractor {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if w == nil {
		panic("writer cannot be nil")
	}
	if calc == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Extractor{scanner: scanner, writer: w, calculator: calc, logger: logger}
}

// Run reads every form record in formsDir and writes the units and
// INDEX.md into outputDir. Records that cannot be decoded are logged and
// skipped.
func (e *Extractor) Run(ctx context.Context, formsDir, outputDir string) (erpbrain.RunSummary, error) {
	var summary erpbrain.RunSummary

	e.logger.Info("Extracting PL/SQL from forms in: %s", formsDir)
	e.logger.Verbose("Output directory: %s", outputDir)

	scan, err := e.scanner.ScanDirectory(formsDir, ".json")
	if err != nil {
		return summary, err
	}
	summary.Found = scan.Total()
	for _, u := range scan.Unreadable {
		e.logger.Error("Skipped %s: %v", u.Name, u.Err)
		summary.Skipped = append(summary.Skipped, u.Name)
	}
	e.logger.Info("Found %d form JSON files", summary.Found)

	if err := e.writer.EnsureDir(outputDir); err != nil {
		return summary, err
	}

	var units []erpbrain.PLSQLUnit
	for _, file := range scan.Files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		e.logger.Verbose("Processing: %s", file.Name)
		var form erpbrain.Form
		if err := json.Unmarshal(file.Content, &form); err != nil {
			e.logger.Error("Skipped %s: %v", file.Name, err)
			summary.Skipped = append(summary.Skipped, file.Name)
			continue
		}
		units = append(units, Units(form, file.Stem, e.calculator)...)
	}

	e.logger.Info("Found %d PL/SQL units in forms", len(units))

	namer := newFileNamer()
	entries := make([]IndexEntry, 0, len(units))
	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		file := namer.next(unit.Name)
		changed, err := e.writer.WriteJSON(filepath.Join(outputDir, file), unit)
		if err != nil {
			return summary, fmt.Errorf("unit %s: %w", unit.Name, err)
		}
		writer.Record(&summary, changed)
		entries = append(entries, IndexEntry{Unit: unit, File: file})
	}

	for _, c := range CountByType(entries) {
		e.logger.Verbose("  %s: %d", c.Type, c.Count)
	}

	indexPath := filepath.Join(outputDir, erpbrain.IndexMarkdownName)
	if _, err := e.writer.WriteText(indexPath, RenderIndex(entries)); err != nil {
		return summary, err
	}

	e.logger.Info("Saved %d PL/SQL units to %s", len(entries), outputDir)
	return summary, nil
}
