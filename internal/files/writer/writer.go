package writer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/erpbrain/internal/checksum"
	"github.com/vvka-141/erpbrain/internal/files/filesystem"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Writer writes knowledge files through a filesystem provider.
type Writer struct {
	fsProvider filesystem.FileSystemProvider
	calculator checksum.Calculator
	logger     erpbrain.Logger
}

// New creates a Writer. Panics if any argument is nil.
func New(fsProvider filesystem.FileSystemProvider, calculator checksum.Calculator, logger erpbrain.Logger) *Writer {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Writer{
		fsProvider: fsProvider,
		calculator: calculator,
		logger:     logger,
	}
}

// EncodeJSON renders v the way every knowledge JSON file is rendered.
func EncodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes v and writes it to path.
// It reports whether the file content changed.
func (w *Writer) WriteJSON(path string, v interface{}) (bool, error) {
	data, err := EncodeJSON(v)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return w.WriteBytes(path, data)
}

// WriteText writes text to path, replacing invalid UTF-8 with U+FFFD.
// It reports whether the file content changed.
func (w *Writer) WriteText(path, text string) (bool, error) {
	return w.WriteBytes(path, []byte(strings.ToValidUTF8(text, "\uFFFD")))
}

// WriteBytes writes data to path unless the file already holds exactly data.
// It reports whether the file content changed.
func (w *Writer) WriteBytes(path string, data []byte) (bool, error) {
	if err := w.EnsureDir(filepath.Dir(path)); err != nil {
		return false, err
	}

	existing, err := w.fsProvider.ReadFile(path)
	switch {
	case err == nil:
		if w.calculator.CalculateRaw(existing) == w.calculator.CalculateRaw(data) {
			w.logger.Verbose("Unchanged: %s", path)
			return false, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		w.logger.Verbose("Could not read existing %s, overwriting: %v", path, err)
	}

	if err := w.fsProvider.WriteFile(path, data); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	w.logger.Verbose("Wrote: %s", path)
	return true, nil
}

// EnsureDir creates dir and any missing parents.
func (w *Writer) EnsureDir(dir string) error {
	if err := w.fsProvider.MkdirAll(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Record tallies one write outcome into summary.
func Record(summary *erpbrain.RunSummary, changed bool) {
	summary.Written++
	if !changed {
		summary.Unchanged++
	}
}
