package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the read/write surface the pipelines need.
// Paths are plain OS-style paths; implementations decide how to resolve them.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir reads the directory entries at the given path, sorted by name.
	// Unlike Walk-style traversal it does not descend into subdirectories.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// WriteFile creates or truncates the file at path.
	// The parent directory must exist.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory along with any missing parents.
	MkdirAll(path string) error
}
