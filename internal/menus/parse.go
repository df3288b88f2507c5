package menus

import (
	"fmt"

	"github.com/vvka-141/erpbrain/internal/xmltree"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// Parse decodes one menu export. A document without a MenuModule element
// under its root yields an error wrapping erpbrain.ErrMissingRoot.
func Parse(data []byte, filePath, sourceFile string) (erpbrain.MenuModule, error) {
	root, err := xmltree.Parse(data, filePath)
	if err != nil {
		return erpbrain.MenuModule{}, err
	}

	module := root.Child(erpbrain.FormsNamespace, "MenuModule")
	if module == nil {
		return erpbrain.MenuModule{}, fmt.Errorf("%w: no MenuModule in %s", erpbrain.ErrMissingRoot, filePath)
	}

	result := erpbrain.MenuModule{
		Name:       module.AttrOr("Name", "UNKNOWN"),
		MainMenu:   module.AttrOr("MainMenu", ""),
		SourceFile: sourceFile,
		Menus:      []erpbrain.Menu{},
	}

	for _, m := range module.ChildrenNamed(erpbrain.FormsNamespace, "Menu") {
		menu := erpbrain.Menu{
			Name:  m.AttrOr("Name", ""),
			Items: []erpbrain.MenuItem{},
		}
		for _, i := range m.ChildrenNamed(erpbrain.FormsNamespace, "MenuItem") {
			menu.Items = append(menu.Items, parseItem(i))
		}
		result.Menus = append(result.Menus, menu)
	}

	return result, nil
}

func parseItem(n *xmltree.Node) erpbrain.MenuItem {
	return erpbrain.MenuItem{
		Name:                       n.AttrOr("Name", ""),
		Label:                      n.AttrOr("Label", ""),
		Type:                       n.AttrOr("MenuItemType", "Command"),
		CommandType:                n.AttrOr("CommandType", ""),
		Submenu:                    n.AttrOr("SubMenuName", ""),
		MenuItemCode:               n.AttrOr("MenuItemCode", ""),
		VisibleInMenu:              flag(n, "VisibleInMenu", true),
		Enabled:                    flag(n, "Enabled", true),
		IconFilename:               n.AttrOr("IconFilename", ""),
		KeyboardAccelerator:        n.AttrOr("KeyboardAccelerator", ""),
		MagicItem:                  n.AttrOr("MagicItem", ""),
		DisplayNoPriv:              flag(n, "DisplayNoPriv", false),
		VisibleInVerticalToolbar:   flag(n, "VisibleInVerticalMenuToolbar", false),
		VisibleInHorizontalToolbar: flag(n, "VisibleInHorizontalMenuToolbar", false),
	}
}

// flag reads a Forms boolean property. Only the exact value "true" is true.
func flag(n *xmltree.Node, name string, def bool) bool {
	v, ok := n.Attr(name)
	if !ok {
		return def
	}
	return v == "true"
}
