// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// The pipelines only need to list a directory, read and stat files, create
// output directories and write files. FileSystemProvider captures exactly that
// surface so that every pipeline can run against an in-memory tree in tests.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
