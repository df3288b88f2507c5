package menus

import (
	"errors"
	"testing"

	"github.com/vvka-141/erpbrain/internal/xmltree"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

const mainMenuXML = `<?xml version="1.0" encoding="UTF-8"?>
<Module version="101020002" xmlns="http://xmlns.oracle.com/Forms">
  <MenuModule Name="Main Menu" MainMenu="MAIN">
    <Menu Name="MAIN">
      <MenuItem Name="FILE" Label="File" MenuItemType="Plain" CommandType="Menu" SubMenuName="FILE_MENU"/>
      <MenuItem Name="ORDERS" Label="Orders | Entry" CommandType="PL/SQL"
                MenuItemCode="call_form('orders');" VisibleInMenu="false" Enabled="TRUE"
                IconFilename="orders" KeyboardAccelerator="Ctrl+O" MagicItem="Quit"
                DisplayNoPriv="true" VisibleInVerticalMenuToolbar="true"/>
    </Menu>
    <Menu Name="FILE_MENU"/>
  </MenuModule>
</Module>`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(mainMenuXML), "/raw/main_mmb.xml", "main_mmb.xml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Name != "Main Menu" || m.MainMenu != "MAIN" || m.SourceFile != "main_mmb.xml" {
		t.Errorf("module = %+v", m)
	}
	if len(m.Menus) != 2 || len(m.Menus[0].Items) != 2 {
		t.Fatalf("menus = %+v", m.Menus)
	}
	if m.Menus[1].Items == nil {
		t.Error("empty menu must carry an empty items slice")
	}

	file := m.Menus[0].Items[0]
	want := erpbrain.MenuItem{
		Name: "FILE", Label: "File", Type: "Plain", CommandType: "Menu", Submenu: "FILE_MENU",
		VisibleInMenu: true, Enabled: true,
	}
	if file != want {
		t.Errorf("FILE item = %+v, want %+v", file, want)
	}

	orders := m.Menus[0].Items[1]
	if orders.Type != "Command" {
		t.Errorf("default type = %q, want Command", orders.Type)
	}
	if orders.VisibleInMenu {
		t.Error("VisibleInMenu should be false")
	}
	if orders.Enabled {
		t.Error(`Enabled="TRUE" is not the literal "true" and must be false`)
	}
	if !orders.DisplayNoPriv || !orders.VisibleInVerticalToolbar || orders.VisibleInHorizontalToolbar {
		t.Errorf("flags = %+v", orders)
	}
	if orders.MenuItemCode != "call_form('orders');" || orders.KeyboardAccelerator != "Ctrl+O" {
		t.Errorf("strings = %+v", orders)
	}
}

func TestParse_DefaultName(t *testing.T) {
	doc := `<Module xmlns="http://xmlns.oracle.com/Forms"><MenuModule/></Module>`

	m, err := Parse([]byte(doc), "x.xml", "x.xml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Name != "UNKNOWN" || m.MainMenu != "" || len(m.Menus) != 0 {
		t.Errorf("module = %+v", m)
	}
}

func TestParse_MissingModule(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no module", `<Module xmlns="http://xmlns.oracle.com/Forms"><FormModule/></Module>`},
		{"wrong namespace", `<Module><MenuModule Name="X"/></Module>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), "x.xml", "x.xml")
			if !errors.Is(err, erpbrain.ErrMissingRoot) {
				t.Errorf("expected ErrMissingRoot, got %v", err)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`<Module><MenuModule>`), "x.xml", "x.xml")

	var parseErr *xmltree.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *xmltree.ParseError, got %v", err)
	}
}
