package forms

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/vvka-141/erpbrain/internal/files/writer"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// ImportSampleSize is how many target files an import lists back.
const ImportSampleSize = 5

// ImportResult reports what an import copied.
type ImportResult struct {
	JSONCopied     int
	MarkdownCopied int
	TotalInTarget  int
	Sample         []string
}

// Importer copies form records produced by earlier tooling
// (schema/forms/*.json and analysis/forms/*.md) into the knowledge tree.
type Importer struct {
	scanner erpbrain.FileScanner
	writer  *writer.Writer
	logger  erpbrain.Logger
}

// NewImporter creates an Importer. Panics if any dependency is nil.
func NewImporter(scanner erpbrain.FileScanner, w *writer.Writer, logger erpbrain.Logger) *Importer {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if w == nil {
		panic("writer cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Importer{scanner: scanner, writer: w, logger: logger}
}

// Import copies jsonDir/*.json and mdDir/*.md into targetDir, keeping file
// names. A missing source directory is skipped.
func (im *Importer) Import(ctx context.Context, jsonDir, mdDir, targetDir string) (ImportResult, error) {
	var result ImportResult

	if err := im.writer.EnsureDir(targetDir); err != nil {
		return result, err
	}

	n, err := im.copyAll(ctx, jsonDir, ".json", targetDir)
	if err != nil {
		return result, err
	}
	result.JSONCopied = n

	n, err = im.copyAll(ctx, mdDir, ".md", targetDir)
	if err != nil {
		return result, err
	}
	result.MarkdownCopied = n

	target, err := im.scanner.ScanDirectory(targetDir)
	if err != nil {
		return result, err
	}
	result.TotalInTarget = len(target.Files)
	for i, f := range target.Files {
		if i == ImportSampleSize {
			break
		}
		result.Sample = append(result.Sample, f.Name)
	}

	im.logger.Info("Total files in %s: %d", targetDir, result.TotalInTarget)
	for _, name := range result.Sample {
		im.logger.Info("  - %s", name)
	}
	return result, nil
}

func (im *Importer) copyAll(ctx context.Context, sourceDir, ext, targetDir string) (int, error) {
	scan, err := im.scanner.ScanDirectory(sourceDir, ext)
	if errors.Is(err, erpbrain.ErrInputNotFound) {
		im.logger.Verbose("Source %s not found, skipping", sourceDir)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	im.logger.Info("Found %d %s files in %s", scan.Total(), ext, sourceDir)
	for _, u := range scan.Unreadable {
		im.logger.Error("Not copied %s: %v", u.Name, u.Err)
	}
	for _, file := range scan.Files {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := im.writer.WriteBytes(filepath.Join(targetDir, file.Name), file.Content); err != nil {
			return 0, err
		}
		im.logger.Verbose("Copied %s", file.Name)
	}
	return len(scan.Files), nil
}
