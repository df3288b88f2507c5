package plsql

import (
	"fmt"

	"github.com/vvka-141/erpbrain/internal/checksum"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

const (
	// UnitTypeTrigger is the type given to units lifted from triggers.
	UnitTypeTrigger = "TRIGGER"

	// UnitTypeProgramUnit is used when a program unit declares no type.
	UnitTypeProgramUnit = "PROGRAM_UNIT"
)

// Units flattens a form into PL/SQL units: triggers first, then program
// units, skipping anything without code. fallbackName is used when the
// record carries no form name.
func Units(form erpbrain.Form, fallbackName string, calc checksum.Calculator) []erpbrain.PLSQLUnit {
	formName := form.FormName
	if formName == "" {
		formName = fallbackName
	}

	var units []erpbrain.PLSQLUnit
	for _, t := range form.Triggers {
		if t.Code == "" {
			continue
		}
		unit := newUnit(formName, t.Name, UnitTypeTrigger, t.Code, calc)
		unit.TriggerType = t.Type
		units = append(units, unit)
	}

	for _, p := range form.ProgramUnits {
		if p.Code == "" {
			continue
		}
		unitType := p.Type
		if unitType == "" {
			unitType = UnitTypeProgramUnit
		}
		units = append(units, newUnit(formName, p.Name, unitType, p.Code, calc))
	}
	return units
}

func newUnit(formName, name, unitType, code string, calc checksum.Calculator) erpbrain.PLSQLUnit {
	qualified := fmt.Sprintf("%s.%s", formName, name)
	return erpbrain.PLSQLUnit{
		ID:               UnitID(qualified).String(),
		Name:             qualified,
		Type:             unitType,
		Form:             formName,
		Code:             code,
		Source:           "Form: " + formName,
		TablesReferenced: ExtractTables(code),
		CodeChecksum:     calc.CalculateNormalized([]byte(code)),
	}
}
