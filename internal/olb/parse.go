package olb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/erpbrain/internal/xmltree"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

const ns = erpbrain.FormsNamespace

// Parse decodes one object library export. A document without an
// ObjectLibrary element under its root yields an error wrapping
// erpbrain.ErrMissingRoot. A non-numeric ObjectCount is an error.
func Parse(data []byte, filePath, sourceFile string) (erpbrain.ObjectLibrary, error) {
	root, err := xmltree.Parse(data, filePath)
	if err != nil {
		return erpbrain.ObjectLibrary{}, err
	}

	lib := root.Child(ns, "ObjectLibrary")
	if lib == nil {
		return erpbrain.ObjectLibrary{}, fmt.Errorf("%w: no ObjectLibrary in %s", erpbrain.ErrMissingRoot, filePath)
	}

	count, err := objectCount(lib, filePath)
	if err != nil {
		return erpbrain.ObjectLibrary{}, err
	}

	result := erpbrain.ObjectLibrary{
		Name:        lib.AttrOr("Name", "UNKNOWN"),
		ObjectCount: count,
		SourceFile:  sourceFile,
		Tabs:        []erpbrain.LibraryTab{},
	}

	for _, t := range lib.ChildrenNamed(ns, "ObjectLibraryTab") {
		tab, err := parseTab(t, filePath)
		if err != nil {
			return erpbrain.ObjectLibrary{}, err
		}
		result.Tabs = append(result.Tabs, tab)
	}

	return result, nil
}

func parseTab(t *xmltree.Node, filePath string) (erpbrain.LibraryTab, error) {
	count, err := objectCount(t, filePath)
	if err != nil {
		return erpbrain.LibraryTab{}, err
	}

	tab := erpbrain.LibraryTab{
		Name:         t.AttrOr("Name", ""),
		Label:        t.AttrOr("Label", ""),
		ObjectCount:  count,
		Items:        []erpbrain.LibraryItem{},
		ProgramUnits: []erpbrain.LibraryProgramUnit{},
		Triggers:     []erpbrain.LibraryTrigger{},
	}

	for _, i := range t.ChildrenNamed(ns, "Item") {
		item := erpbrain.LibraryItem{
			Name:       i.AttrOr("Name", ""),
			ItemType:   i.AttrOr("ItemType", ""),
			Label:      i.AttrOr("Label", ""),
			Canvas:     i.AttrOr("CanvasName", ""),
			ColumnName: i.AttrOr("ColumnName", ""),
			DataType:   i.AttrOr("DataType", ""),
			Width:      i.AttrOr("Width", ""),
			Height:     i.AttrOr("Height", ""),
			X:          i.AttrOr("XPosition", ""),
			Y:          i.AttrOr("YPosition", ""),
		}
		for _, trig := range i.ChildrenNamed(ns, "Trigger") {
			item.Triggers = append(item.Triggers, parseTrigger(trig))
		}
		tab.Items = append(tab.Items, item)
	}

	for _, p := range t.ChildrenNamed(ns, "ProgramUnit") {
		tab.ProgramUnits = append(tab.ProgramUnits, erpbrain.LibraryProgramUnit{
			Name: p.AttrOr("Name", ""),
			Type: p.AttrOr("ProgramUnitType", ""),
			Text: p.AttrOr("ProgramUnitText", ""),
		})
	}

	for _, trig := range t.ChildrenNamed(ns, "Trigger") {
		tab.Triggers = append(tab.Triggers, parseTrigger(trig))
	}

	return tab, nil
}

func parseTrigger(n *xmltree.Node) erpbrain.LibraryTrigger {
	return erpbrain.LibraryTrigger{
		Name:        n.AttrOr("Name", ""),
		TriggerText: n.AttrOr("TriggerText", ""),
	}
}

func objectCount(n *xmltree.Node, filePath string) (int, error) {
	raw := n.AttrOr("ObjectCount", "0")
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &xmltree.ParseError{
			FilePath: filePath,
			Message:  fmt.Sprintf("%s %q has non-numeric ObjectCount %q", n.Name.Local, n.AttrOr("Name", ""), raw),
		}
	}
	return count, nil
}
