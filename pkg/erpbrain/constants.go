package erpbrain

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Extraction completed
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration (missing endpoint, API key, bad owner)
	ExitQueryFailed    = 11 // Remote query service call failed
	ExitInputNotFound  = 12 // Input directory missing
	ExitPartialFailure = 13 // Some input files were skipped (only with --strict)
)

const (
	// FormsNamespace is the XML namespace of Forms, Menu and Object Library exports.
	FormsNamespace = "http://xmlns.oracle.com/Forms"

	// DefaultSchemaOwner is the schema owner enumerated by schema sync.
	DefaultSchemaOwner = "SGDGROUP"

	// DefaultQueryTimeout bounds a single call to the query service.
	DefaultQueryTimeout = 30 * time.Second

	// DefaultTableThrottle is the fixed pause between per-table fetches.
	DefaultTableThrottle = 100 * time.Millisecond

	// MaxErrorPreviewLength is the maximum number of characters of a failed
	// response body that is kept in errors and logs.
	MaxErrorPreviewLength = 200

	// ReportScanNote is attached to every report scan record.
	ReportScanNote = "Extracted via binary scan. Full XML requires Oracle rwconverter."

	// ReportSampleSize is the number of raw strings kept in a report scan.
	ReportSampleSize = 50

	// MinPrintableRun is the minimum length of a printable ASCII run in a report binary.
	MinPrintableRun = 4

	// MaxTitleLength is the exclusive upper bound on a report title guess.
	MaxTitleLength = 100

	// IndexMarkdownName and IndexJSONName are the aggregate index file names.
	IndexMarkdownName = "INDEX.md"
	IndexJSONName     = "INDEX.json"

	// DefaultSchemaFileName is the schema sync output under knowledge/tables.
	DefaultSchemaFileName = "sgdgroup_schema.json"
)
