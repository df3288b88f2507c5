package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/erpbrain/internal/checksum"
	"github.com/vvka-141/erpbrain/internal/files/filesystem"
	"github.com/vvka-141/erpbrain/internal/files/scanner"
	"github.com/vvka-141/erpbrain/internal/files/writer"
	"github.com/vvka-141/erpbrain/internal/logging"
)

func newTestImporter() (*Importer, *filesystem.MemoryFileSystem) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	calc := checksum.New()
	log := logging.NewNullLogger()
	return NewImporter(scanner.NewScannerWithFS(calc, mfs), writer.New(mfs, calc, log), log), mfs
}

func TestImporter_Import(t *testing.T) {
	im, mfs := newTestImporter()
	mfs.AddFile("raw/schema/forms/a.json", `{"form_name":"a"}`)
	mfs.AddFile("raw/schema/forms/b.json", `{"form_name":"b"}`)
	mfs.AddFile("raw/schema/forms/skip.md", "not copied")
	mfs.AddFile("raw/analysis/forms/a.md", "# a")
	mfs.AddFile("knowledge/forms/existing.json", "{}")

	result, err := im.Import(context.Background(),
		"/project/raw/schema/forms", "/project/raw/analysis/forms", "/project/knowledge/forms")
	require.NoError(t, err)

	assert.Equal(t, 2, result.JSONCopied)
	assert.Equal(t, 1, result.MarkdownCopied)
	assert.Equal(t, 4, result.TotalInTarget)
	assert.Equal(t, []string{"a.json", "a.md", "b.json", "existing.json"}, result.Sample)

	content, err := mfs.ReadFile("/project/knowledge/forms/a.json")
	require.NoError(t, err)
	assert.Equal(t, `{"form_name":"a"}`, string(content))
}

func TestImporter_Import_MissingSources(t *testing.T) {
	im, _ := newTestImporter()

	result, err := im.Import(context.Background(),
		"/project/raw/schema/forms", "/project/raw/analysis/forms", "/project/knowledge/forms")
	require.NoError(t, err)

	assert.Zero(t, result.JSONCopied)
	assert.Zero(t, result.MarkdownCopied)
	assert.Zero(t, result.TotalInTarget)
	assert.Empty(t, result.Sample)
}

func TestImporter_Import_SampleLimit(t *testing.T) {
	im, mfs := newTestImporter()
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		mfs.AddFile("raw/schema/forms/"+name+".json", "{}")
	}

	result, err := im.Import(context.Background(),
		"/project/raw/schema/forms", "/project/raw/analysis/forms", "/project/knowledge/forms")
	require.NoError(t, err)

	assert.Equal(t, 7, result.TotalInTarget)
	assert.Len(t, result.Sample, ImportSampleSize)
}
