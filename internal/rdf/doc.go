// Package rdf scans compiled Oracle Reports binaries (.rdf) for text.
//
// The RDF container format is not decoded. The scanner pulls printable
// ASCII runs out of the raw bytes and applies heuristics to them: runs
// mentioning both SELECT and FROM are treated as SQL, upper-case tokens
// containing an underscore as table names, and the first short non-SQL
// run as the report title. Expect false positives; the full report
// definition needs Oracle's rwconverter.
package rdf
