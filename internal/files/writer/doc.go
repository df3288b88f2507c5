// Package writer emits knowledge files.
//
// Every pipeline writes through a Writer so that output is uniform:
// JSON is indented by two spaces with HTML escaping disabled, text is
// forced to valid UTF-8, and parent directories are created on demand.
//
// A file whose current bytes already match the new output (by raw
// checksum) is not rewritten, which keeps re-runs over unchanged inputs
// from touching the knowledge tree.
package writer
