package erpbrain

import (
	"encoding/json"
	"fmt"
)

// RunSummary reports the outcome of one pipeline run.
type RunSummary struct {
	// Found is the number of input files (or units) discovered.
	Found int

	// Written is the number of records emitted.
	Written int

	// Unchanged is the number of emitted files whose bytes already matched.
	Unchanged int

	// Skipped lists inputs that were logged and omitted.
	Skipped []string
}

// Err returns ErrPartialFailure when any input was skipped.
func (s RunSummary) Err() error {
	if len(s.Skipped) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d skipped: %w", len(s.Skipped), s.Found, ErrPartialFailure)
}

// Form is the knowledge record of one Forms XML export.
type Form struct {
	FormName     string        `json:"form_name"`
	SourceFile   string        `json:"source_file"`
	Blocks       []Block       `json:"blocks"`
	Items        []Item        `json:"items"`
	DataSources  []DataSource  `json:"data_sources"`
	Triggers     []Trigger     `json:"triggers"`
	ProgramUnits []ProgramUnit `json:"program_units"`
}

// Block is a data block and the items found beneath it.
type Block struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Items []Item `json:"items"`
}

// Item is a form item (field, button, ...).
type Item struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Prompt   string `json:"prompt"`
	DataType string `json:"data_type"`
	Width    string `json:"width"`
	Height   string `json:"height"`
}

// DataSource is a named query of a form.
type DataSource struct {
	Name string `json:"name"`
	SQL  string `json:"sql"`
}

// Trigger is a form trigger with its PL/SQL body.
type Trigger struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Code string `json:"code"`
}

// ProgramUnit is a form-level procedure, function or package.
type ProgramUnit struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Code string `json:"code"`
}

// PLSQLUnit is a trigger or program unit lifted out of a form.
type PLSQLUnit struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Form             string   `json:"form"`
	TriggerType      string   `json:"trigger_type,omitempty"`
	Code             string   `json:"code"`
	Source           string   `json:"source"`
	TablesReferenced []string `json:"tables_referenced"`
	CodeChecksum     string   `json:"code_checksum"`
}

// MenuModule is the knowledge record of one menu export.
type MenuModule struct {
	Name       string `json:"name"`
	MainMenu   string `json:"main_menu"`
	SourceFile string `json:"source_file"`
	Menus      []Menu `json:"menus"`
}

// Menu is one sub-menu of a menu module.
type Menu struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}

// MenuItem is a single entry of a menu.
type MenuItem struct {
	Name                       string `json:"name"`
	Label                      string `json:"label"`
	Type                       string `json:"type"`
	CommandType                string `json:"command_type"`
	Submenu                    string `json:"submenu"`
	MenuItemCode               string `json:"menu_item_code"`
	VisibleInMenu              bool   `json:"visible_in_menu"`
	Enabled                    bool   `json:"enabled"`
	IconFilename               string `json:"icon_filename"`
	KeyboardAccelerator        string `json:"keyboard_accelerator"`
	MagicItem                  string `json:"magic_item"`
	DisplayNoPriv              bool   `json:"display_no_priv"`
	VisibleInVerticalToolbar   bool   `json:"visible_in_vertical_toolbar"`
	VisibleInHorizontalToolbar bool   `json:"visible_in_horizontal_toolbar"`
}

// ObjectLibrary is the knowledge record of one object library export.
type ObjectLibrary struct {
	Name        string       `json:"name"`
	ObjectCount int          `json:"object_count"`
	SourceFile  string       `json:"source_file"`
	Tabs        []LibraryTab `json:"tabs"`
}

// LibraryTab groups the reusable objects of one library tab.
type LibraryTab struct {
	Name         string               `json:"name"`
	Label        string               `json:"label"`
	ObjectCount  int                  `json:"object_count"`
	Items        []LibraryItem        `json:"items"`
	ProgramUnits []LibraryProgramUnit `json:"program_units"`
	Triggers     []LibraryTrigger     `json:"triggers"`
}

// LibraryItem is a UI widget stored in an object library.
type LibraryItem struct {
	Name       string           `json:"name"`
	ItemType   string           `json:"item_type"`
	Label      string           `json:"label"`
	Canvas     string           `json:"canvas"`
	ColumnName string           `json:"column_name"`
	DataType   string           `json:"data_type"`
	Width      string           `json:"width"`
	Height     string           `json:"height"`
	X          string           `json:"x"`
	Y          string           `json:"y"`
	Triggers   []LibraryTrigger `json:"triggers,omitempty"`
}

// LibraryProgramUnit is PL/SQL stored in an object library.
type LibraryProgramUnit struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// LibraryTrigger is a trigger stored in an object library.
type LibraryTrigger struct {
	Name        string `json:"name"`
	TriggerText string `json:"trigger_text"`
}

// ReportScan is the best-effort record of one compiled report binary.
type ReportScan struct {
	Filename         string   `json:"filename"`
	Title            string   `json:"title"`
	SQLFragments     []string `json:"sql_fragments"`
	TablesReferenced []string `json:"tables_referenced"`
	RawStringsSample []string `json:"raw_strings_sample"`
	Note             string   `json:"note"`
}

// ReportIndexEntry is one line of the reports INDEX.json.
type ReportIndexEntry struct {
	Filename string   `json:"filename"`
	Title    string   `json:"title"`
	Tables   []string `json:"tables"`
	JSON     string   `json:"json"`
	MD       string   `json:"md"`
}

// Row is one result row from the query service, keyed by upper-case column name.
type Row map[string]interface{}

// Schema is the knowledge record of a remote schema owner.
// TotalTables is set only by a table-list run, where it is always written.
type Schema struct {
	GeneratedAtUTC string                 `json:"generated_at_utc"`
	Owner          string                 `json:"owner"`
	TotalTables    *int                   `json:"total_tables,omitempty"`
	Tables         map[string]TableSchema `json:"tables"`
}

// Constraints groups the key constraints of a table.
type Constraints struct {
	PrimaryUnique []Row `json:"primary_unique"`
	ForeignKeys   []Row `json:"foreign_keys"`
}

// TableSchema is the column and constraint listing of one table.
// A table whose fetch failed carries only Error. A stub produced by a
// table-list run carries no columns and an empty constraints object.
type TableSchema struct {
	Columns     []Row
	Constraints Constraints
	Error       string
	Stub        bool
}

// MarshalJSON emits one of the three shapes described on TableSchema.
func (t TableSchema) MarshalJSON() ([]byte, error) {
	switch {
	case t.Error != "":
		return json.Marshal(struct {
			Error string `json:"error"`
		}{t.Error})
	case t.Stub:
		return json.Marshal(struct {
			Columns     []Row    `json:"columns"`
			Constraints struct{} `json:"constraints"`
		}{Columns: []Row{}})
	}

	columns := t.Columns
	if columns == nil {
		columns = []Row{}
	}
	cons := t.Constraints
	if cons.PrimaryUnique == nil {
		cons.PrimaryUnique = []Row{}
	}
	if cons.ForeignKeys == nil {
		cons.ForeignKeys = []Row{}
	}
	return json.Marshal(struct {
		Columns     []Row       `json:"columns"`
		Constraints Constraints `json:"constraints"`
	}{columns, cons})
}
