package rdf

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/erpbrain/internal/checksum"
	"github.com/vvka-141/erpbrain/internal/files/filesystem"
	"github.com/vvka-141/erpbrain/internal/files/scanner"
	"github.com/vvka-141/erpbrain/internal/files/writer"
	"github.com/vvka-141/erpbrain/internal/logging"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

func newTestExtractor() (*Extractor, *filesystem.MemoryFileSystem) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	calc := checksum.New()
	log := logging.NewNullLogger()
	return NewExtractor(scanner.NewScannerWithFS(calc, mfs), writer.New(mfs, calc, log), log), mfs
}

func TestExtractor_Run(t *testing.T) {
	e, mfs := newTestExtractor()
	mfs.AddFile("raw/reports_rdf/Sales Ledger.RDF", "\x00Sales Ledger\x00SELECT A FROM AR_LEDGER\x00")
	mfs.AddFile("raw/reports_rdf/empty.rdf", "\x00\x01")
	mfs.AddFile("raw/reports_rdf/readme.txt", "ignored text")

	summary, err := e.Run(context.Background(), "/project/raw/reports_rdf", "/project/knowledge/reports")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Found)
	assert.Equal(t, 2, summary.Written)

	data, err := mfs.ReadFile("/project/knowledge/reports/sales_ledger.json")
	require.NoError(t, err)
	var report erpbrain.ReportScan
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, []string{"SELECT A FROM AR_LEDGER"}, report.SQLFragments)

	data, err = mfs.ReadFile("/project/knowledge/reports/INDEX.json")
	require.NoError(t, err)
	var index []erpbrain.ReportIndexEntry
	require.NoError(t, json.Unmarshal(data, &index))
	require.Len(t, index, 2)
	assert.Equal(t, erpbrain.ReportIndexEntry{
		Filename: "Sales Ledger.RDF",
		Title:    "Sales Ledger",
		Tables:   []string{"AR_LEDGER"},
		JSON:     "sales_ledger.json",
		MD:       "sales_ledger.md",
	}, index[0])
	assert.Equal(t, "empty.json", index[1].JSON)
	assert.Equal(t, []string{}, index[1].Tables)
}

func TestExtractor_Run_EmptyIndex(t *testing.T) {
	e, mfs := newTestExtractor()
	require.NoError(t, mfs.MkdirAll("/project/raw/reports_rdf"))

	_, err := e.Run(context.Background(), "/project/raw/reports_rdf", "/project/knowledge/reports")
	require.NoError(t, err)

	data, err := mfs.ReadFile("/project/knowledge/reports/INDEX.json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestExtractor_Run_MissingSourceIsEmpty(t *testing.T) {
	e, mfs := newTestExtractor()

	summary, err := e.Run(context.Background(), "/elsewhere/rdf", "/project/knowledge/reports")
	require.NoError(t, err)
	assert.Zero(t, summary.Found)

	data, err := mfs.ReadFile("/project/knowledge/reports/INDEX.json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestExtractor_Run_WarnsOnDuplicateInput(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	calc := checksum.New()
	var logs bytes.Buffer
	log := logging.NewWriterLogger(&logs, false)
	e := NewExtractor(scanner.NewScannerWithFS(calc, mfs), writer.New(mfs, calc, log), log)
	mfs.AddFile("raw/reports_rdf/a.rdf", "\x00Sales Ledger\x00SELECT A FROM AR_LEDGER\x00")
	mfs.AddFile("raw/reports_rdf/b.rdf", "\x00Sales Ledger\x00SELECT A FROM AR_LEDGER\x00")

	summary, err := e.Run(context.Background(), "/project/raw/reports_rdf", "/project/knowledge/reports")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Written)
	assert.Contains(t, logs.String(), "[WARN] b.rdf has the same content as a.rdf")
}
