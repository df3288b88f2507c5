package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vvka-141/erpbrain/internal/checksum"
	"github.com/vvka-141/erpbrain/internal/files/filesystem"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Scanner discovers the input files of one pipeline directory.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanDirectory lists dir without descending into subdirectories and returns
// every regular file whose extension matches one of exts, ignoring case.
// With no exts every file matches. Files come back sorted by name.
//
// A missing directory is reported as erpbrain.ErrInputNotFound. Files that
// cannot be read are listed in Unreadable and do not fail the scan.
func (s *Scanner) ScanDirectory(dir string, exts ...string) (erpbrain.FileScanResult, error) {
	infos, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return erpbrain.FileScanResult{}, fmt.Errorf("%w: %s", erpbrain.ErrInputNotFound, dir)
		}
		return erpbrain.FileScanResult{}, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var (
		files      []erpbrain.SourceFile
		unreadable []erpbrain.UnreadableFile
	)
	for _, info := range infos {
		if info.IsDir() || !matchesExtension(info.Name(), exts) {
			continue
		}

		file, err := s.processFile(dir, info)
		if err != nil {
			unreadable = append(unreadable, erpbrain.UnreadableFile{Path: file.Path, Name: file.Name, Err: err})
			continue
		}
		files = append(files, file)
	}

	return erpbrain.FileScanResult{Files: files, Unreadable: unreadable}, nil
}

func (s *Scanner) processFile(dir string, info filesystem.FileInfo) (erpbrain.SourceFile, error) {
	filePath := filepath.Join(dir, info.Name())

	name := info.Name()

	content, err := s.fsProvider.ReadFile(filePath)
	if err != nil {
		return erpbrain.SourceFile{Path: filePath, Name: name}, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	return erpbrain.SourceFile{
		Path:     filePath,
		Name:     name,
		Stem:     strings.TrimSuffix(name, filepath.Ext(name)),
		Content:  content,
		Checksum: s.calculator.CalculateRaw(content),
	}, nil
}

func matchesExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, want := range exts {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// Verify Scanner implements the interface at compile time
var _ erpbrain.FileScanner = (*Scanner)(nil)
