package forms

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/erpbrain/internal/files/writer"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Extractor converts a directory of Forms XML exports into form records.
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

// Run parses every *.xml file of inputDir and writes <stem>.json and
// <stem>.md into outputDir. Files that fail to parse are logged, listed
// in the summary and skipped.
func (e *Extractor) Run(ctx context.Context, inputDir, outputDir string) (erpbrain.RunSummary, error) {
	var summary erpbrain.RunSummary

	e.logger.Info("Parsing Forms XML files from: %s", inputDir)
	e.logger.Verbose("Output directory: %s", outputDir)

	scan, err := e.scanner.ScanDirectory(inputDir, ".xml")
	if err != nil {
		return summary, err
	}
	summary.Found = scan.Total()
	for _, u := range scan.Unreadable {
		e.logger.Error("Skipped %s: %v", u.Name, u.Err)
		summary.Skipped = append(summary.Skipped, u.Name)
	}
	e.logger.Info("Found %d XML files", summary.Found)

	if err := e.writer.EnsureDir(outputDir); err != nil {
		return summary, err
	}

	seen := make(map[string]string)
	for _, file := range scan.Files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if prev, ok := seen[file.Checksum]; ok {
			e.logger.Warn("%s has the same content as %s", file.Name, prev)
		} else {
			seen[file.Checksum] = file.Name
		}

		e.logger.Verbose("Parsing: %s", file.Name)
		form, err := Parse(file.Content, file.Path, FormName(file.Stem), file.Name)
		if err != nil {
			e.logger.Error("Skipped %s: %v", file.Name, err)
			summary.Skipped = append(summary.Skipped, file.Name)
			continue
		}

		changed, err := e.write(outputDir, file.Stem, form)
		if err != nil {
			return summary, err
		}
		writer.Record(&summary, changed)
	}

	e.logger.Info("Parsed %d/%d forms into %s", summary.Written, summary.Found, outputDir)
	return summary, nil
}

func (e *Extractor) write(outputDir, stem string, form erpbrain.Form) (bool, error) {
	jsonChanged, err := e.writer.WriteJSON(filepath.Join(outputDir, stem+".json"), form)
	if err != nil {
		return false, fmt.Errorf("form %s: %w", form.FormName, err)
	}
	mdChanged, err := e.writer.WriteText(filepath.Join(outputDir, stem+".md"), RenderMarkdown(form))
	if err != nil {
		return false, fmt.Errorf("form %s: %w", form.FormName, err)
	}
	return jsonChanged || mdChanged, nil
}
