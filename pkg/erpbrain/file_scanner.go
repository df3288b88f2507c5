package erpbrain

// FileScanner discovers the input files of a pipeline.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// ScanDirectory lists dir (non-recursively) for files whose extension
	// matches one of exts, case-insensitively, sorted by name.
	ScanDirectory(dir string, exts ...string) (FileScanResult, error)
}

// FileScanResult contains the results of scanning a directory.
type FileScanResult struct {
	Files []SourceFile

	// Unreadable lists matching files whose content could not be read.
	Unreadable []UnreadableFile
}

// Total is the number of matching files, readable or not.
func (r FileScanResult) Total() int {
	return len(r.Files) + len(r.Unreadable)
}

// UnreadableFile is a matching file the scanner failed to read.
type UnreadableFile struct {
	Path string
	Name string
	Err  error
}

// SourceFile is one discovered input file with its content.
type SourceFile struct {
	// Path is the full path of the file as passed to the filesystem provider.
	Path string

	// Name is the base name including extension.
	Name string

	// Stem is the base name without extension.
	Stem string

	// Content is the raw file content.
	Content []byte

	// Checksum is the raw SHA-256 of Content.
	Checksum string
}
