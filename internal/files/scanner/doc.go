// Package scanner provides input discovery for the extraction pipelines.
//
// Each pipeline reads one flat directory of exports (Forms XML, menu XML,
// object library XML, compiled reports). The scanner lists that directory,
// filters by extension, reads each match and records its raw checksum.
//
// The scanner is filesystem-agnostic through filesystem.FileSystemProvider,
// so pipelines run against filesystem.MemoryFileSystem in tests.
package scanner
