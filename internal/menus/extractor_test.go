package menus

import (
	"context"
	"path"
	"strings"
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
	mfs.AddFile("raw/menus_xml/main_mmb.xml", mainMenuXML)
	mfs.AddFile("raw/menus_xml/form.xml", `<Module xmlns="http://xmlns.oracle.com/Forms"><FormModule/></Module>`)
	mfs.AddFile("raw/menus_xml/broken.xml", `<Module>`)

	summary, err := e.Run(context.Background(), "/project/raw/menus_xml", "/project/knowledge/menus")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Found)
	assert.Equal(t, 1, summary.Written)
	assert.Equal(t, []string{"broken.xml", "form.xml"}, summary.Skipped)

	_, err = mfs.ReadFile("/project/knowledge/menus/main_menu.json")
	require.NoError(t, err)
	md, err := mfs.ReadFile("/project/knowledge/menus/main_menu.md")
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Menu Module: Main Menu\n")
}

func TestExtractor_Run_Empty(t *testing.T) {
	e, mfs := newTestExtractor()
	require.NoError(t, mfs.MkdirAll("/project/raw/menus_xml"))

	summary, err := e.Run(context.Background(), "/project/raw/menus_xml", "/project/knowledge/menus")
	require.NoError(t, err)
	assert.Zero(t, summary.Found)
	assert.NoError(t, summary.Err())
}

func TestExtractor_Run_MissingInputIsEmpty(t *testing.T) {
	e, mfs := newTestExtractor()

	summary, err := e.Run(context.Background(), "/project/raw/menus_xml", "/project/knowledge/menus")
	require.NoError(t, err)
	assert.Zero(t, summary.Found)
	assert.Empty(t, mfs.Files())
}

func TestExtractor_Run_NameStaysInOutputDir(t *testing.T) {
	e, mfs := newTestExtractor()
	mfs.AddFile("raw/menus_xml/up.xml", `<Module xmlns="http://xmlns.oracle.com/Forms"><MenuModule Name="../../escaped"/></Module>`)
	mfs.AddFile("raw/menus_xml/nested.xml", `<Module xmlns="http://xmlns.oracle.com/Forms"><MenuModule Name="x/y"/></Module>`)

	summary, err := e.Run(context.Background(), "/project/raw/menus_xml", "/project/knowledge/menus")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Written)

	for _, f := range mfs.Files() {
		if strings.HasPrefix(f, "/project/raw/") {
			continue
		}
		assert.Equal(t, "/project/knowledge/menus", path.Dir(f), "unexpected output %s", f)
	}
	_, err = mfs.ReadFile("/project/knowledge/menus/__.._escaped.json")
	assert.NoError(t, err)
	_, err = mfs.ReadFile("/project/knowledge/menus/x_y.json")
	assert.NoError(t, err)
}
