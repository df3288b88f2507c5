package olb

import (
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
)

func newTestExtractor() (*Extractor, *filesystem.MemoryFileSystem) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	calc := checksum.New()
	log := logging.NewNullLogger()
	return NewExtractor(scanner.NewScannerWithFS(calc, mfs), writer.New(mfs, calc, log), log), mfs
}

func TestExtractor_Run(t *testing.T) {
	e, mfs := newTestExtractor()
	mfs.AddFile("raw/olb_xml/sales_olb.xml", salesLibXML)
	mfs.AddFile("raw/olb_xml/bad_count.xml", `<Module xmlns="http://xmlns.oracle.com/Forms"><ObjectLibrary ObjectCount="x"/></Module>`)

	summary, err := e.Run(context.Background(), "/project/raw/olb_xml", "/project/knowledge/libs")
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Found)
	assert.Equal(t, 1, summary.Written)
	assert.Equal(t, []string{"bad_count.xml"}, summary.Skipped)

	data, err := mfs.ReadFile("/project/knowledge/libs/sales_lib.json")
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(4), raw["object_count"])

	items := raw["tabs"].([]interface{})[0].(map[string]interface{})["items"].([]interface{})
	_, hasTriggers := items[0].(map[string]interface{})["triggers"]
	assert.True(t, hasTriggers)
	_, hasTriggers = items[1].(map[string]interface{})["triggers"]
	assert.False(t, hasTriggers, "items without triggers omit the key")

	_, err = mfs.ReadFile("/project/knowledge/libs/sales_lib.md")
	require.NoError(t, err)
}

func TestExtractor_Run_MissingInputIsEmpty(t *testing.T) {
	e, mfs := newTestExtractor()

	summary, err := e.Run(context.Background(), "/project/raw/olb_xml", "/project/knowledge/libs")
	require.NoError(t, err)
	assert.Zero(t, summary.Found)
	assert.Empty(t, mfs.Files())
}

func TestExtractor_Run_NameStaysInOutputDir(t *testing.T) {
	e, mfs := newTestExtractor()
	mfs.AddFile("raw/olb_xml/up.xml", `<Module xmlns="http://xmlns.oracle.com/Forms"><ObjectLibrary Name="../../x"/></Module>`)
	mfs.AddFile("raw/olb_xml/nested.xml", `<Module xmlns="http://xmlns.oracle.com/Forms"><ObjectLibrary Name="a/b"/></Module>`)

	summary, err := e.Run(context.Background(), "/project/raw/olb_xml", "/project/knowledge/libs")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Written)

	_, err = mfs.ReadFile("/project/knowledge/libs/__.._x.json")
	assert.NoError(t, err)
	_, err = mfs.ReadFile("/project/knowledge/libs/a_b.md")
	assert.NoError(t, err)
	_, err = mfs.ReadFile("/x.json")
	assert.Error(t, err)
}
