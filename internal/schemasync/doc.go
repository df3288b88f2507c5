// Package schemasync pulls table, column and constraint metadata of one
// schema owner from the HTTP query service and assembles it into an
// erpbrain.Schema record.
//
// The service accepts POST <endpoint>/query with {"sql": "..."} and
// answers with a JSON array of rows keyed by upper-case column name.
package schemasync
