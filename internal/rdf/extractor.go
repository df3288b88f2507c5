package rdf

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/vvka-141/erpbrain/internal/files/writer"
	"github.com/vvka-141/erpbrain/internal/knowledge"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Extractor writes report scan records and the reports INDEX.json.
// Thread-Safety: NOT safe for concurrent Run calls on the same instance.
type Extractor struct {
	files  erpbrain.FileScanner
	writer *writer.Writer
	logger erpbrain.Logger
}

// NewExtractor creates a report Extractor. Panics if any dependency is nil.
func NewExtractor(files erpbrain.FileScanner, w *writer.Writer, logger erpbrain.Logger) *Extractor {
	if files == nil {
		panic("files cannot be nil")
	}
	if w == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Extractor{files: files, writer: w, logger: logger}
}

// Run scans every *.rdf file of sourceDir and writes <base>.json,
// <base>.md and INDEX.json into outputDir. The index lists every report
// written in this run, in file name order. A missing sourceDir is warned
// about and yields an empty index.
func (e *Extractor) Run(ctx context.Context, sourceDir, outputDir string) (erpbrain.RunSummary, error) {
	var summary erpbrain.RunSummary

	scan, err := e.files.ScanDirectory(sourceDir, ".rdf")
	if errors.Is(err, erpbrain.ErrInputNotFound) {
		e.logger.Warn("Source directory %s does not exist", sourceDir)
		err = nil
	}
	if err != nil {
		return summary, err
	}
	summary.Found = scan.Total()
	for _, u := range scan.Unreadable {
		e.logger.Error("Skipped %s: %v", u.Name, u.Err)
		summary.Skipped = append(summary.Skipped, u.Name)
	}
	e.logger.Info("Found %d RDF files", summary.Found)

	if err := e.writer.EnsureDir(outputDir); err != nil {
		return summary, err
	}

	index := []erpbrain.ReportIndexEntry{}
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

		e.logger.Verbose("Scanning %s...", file.Name)
		report := Scan(file.Name, file.Content)

		base := knowledge.BaseName(file.Stem)
		entry := erpbrain.ReportIndexEntry{
			Filename: report.Filename,
			Title:    report.Title,
			Tables:   report.TablesReferenced,
			JSON:     base + ".json",
			MD:       base + ".md",
		}

		jsonChanged, err := e.writer.WriteJSON(filepath.Join(outputDir, entry.JSON), report)
		if err != nil {
			return summary, err
		}
		mdChanged, err := e.writer.WriteText(filepath.Join(outputDir, entry.MD), RenderMarkdown(report))
		if err != nil {
			return summary, err
		}
		writer.Record(&summary, jsonChanged || mdChanged)
		index = append(index, entry)
	}

	if _, err := e.writer.WriteJSON(filepath.Join(outputDir, erpbrain.IndexJSONName), index); err != nil {
		return summary, err
	}

	e.logger.Info("Generated %d reports + %s", len(index), erpbrain.IndexJSONName)
	return summary, nil
}
