// Package files groups the file handling shared by every extraction step.
//
// Sub-packages:
//   - filesystem: filesystem abstraction (OS and in-memory)
//   - scanner: flat directory listing filtered by extension, with checksums
//   - writer: deterministic JSON/Markdown output that skips unchanged files
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/erpbrain/internal/files/filesystem"
//	    "github.com/vvka-141/erpbrain/internal/files/scanner"
//	    "github.com/vvka-141/erpbrain/internal/files/writer"
//	)
//
//	fs := filesystem.NewOSFileSystem()
//	calc := checksum.New()
//	result, err := scanner.NewScannerWithFS(calc, fs).ScanDirectory("raw/forms_xml", ".xml")
//
//	w := writer.New(fs, calc, logger)
//	changed, err := w.WriteJSON("knowledge/forms/orders_fmb.json", form)
package files
