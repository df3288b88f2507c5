package forms

import (
	"strings"

	"github.com/vvka-141/erpbrain/internal/xmltree"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// FormName derives the form name from an export's file stem.
func FormName(stem string) string {
	return strings.ReplaceAll(stem, "_fmb", "")
}

// Parse decodes one Forms XML export.
// Attributes missing from an element are recorded as empty strings.
func Parse(data []byte, filePath, formName, sourceFile string) (erpbrain.Form, error) {
	root, err := xmltree.Parse(data, filePath)
	if err != nil {
		return erpbrain.Form{}, err
	}

	form := erpbrain.Form{
		FormName:     formName,
		SourceFile:   sourceFile,
		Blocks:       []erpbrain.Block{},
		Items:        []erpbrain.Item{},
		DataSources:  []erpbrain.DataSource{},
		Triggers:     []erpbrain.Trigger{},
		ProgramUnits: []erpbrain.ProgramUnit{},
	}

	for _, b := range root.FindAll(tag("BLOCK")) {
		block := erpbrain.Block{
			Name:  b.AttrFold("Name"),
			Type:  b.AttrFold("BlockType"),
			Items: []erpbrain.Item{},
		}
		for _, i := range b.FindAll(tag("ITEM")) {
			item := erpbrain.Item{
				Name:     i.AttrFold("Name"),
				Type:     i.AttrFold("ItemType"),
				Prompt:   i.AttrFold("Prompt"),
				DataType: i.AttrFold("Datatype"),
				Width:    i.AttrFold("Width"),
				Height:   i.AttrFold("Height"),
			}
			block.Items = append(block.Items, item)
			form.Items = append(form.Items, item)
		}
		form.Blocks = append(form.Blocks, block)
	}

	for _, q := range root.FindAll(tag("QUERY")) {
		form.DataSources = append(form.DataSources, erpbrain.DataSource{
			Name: q.AttrFold("Name"),
			SQL:  q.AttrFold("SQL"),
		})
	}

	for _, t := range root.FindAll(tag("TRIGGER")) {
		form.Triggers = append(form.Triggers, erpbrain.Trigger{
			Name: t.AttrFold("Name"),
			Type: t.AttrFold("TriggerType"),
			Code: code(t, "TriggerText"),
		})
	}

	for _, u := range root.FindAll(tag("PROGRAM_UNIT")) {
		unitType := u.AttrFold("Type")
		if unitType == "" {
			unitType = u.AttrFold("ProgramUnitType")
		}
		form.ProgramUnits = append(form.ProgramUnits, erpbrain.ProgramUnit{
			Name: u.AttrFold("Name"),
			Type: unitType,
			Code: code(u, "ProgramUnitText"),
		})
	}

	return form, nil
}

// code returns the element's leading text, falling back to the attribute
// Forms Builder stores the body in.
func code(n *xmltree.Node, textAttr string) string {
	if text := strings.TrimSpace(n.Text); text != "" {
		return text
	}
	return strings.TrimSpace(n.AttrFold(textAttr))
}

func tag(name string) func(*xmltree.Node) bool {
	want := foldTag(name)
	return func(n *xmltree.Node) bool {
		return foldTag(n.Name.Local) == want
	}
}

func foldTag(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "_", ""))
}
