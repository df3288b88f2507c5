// Package olb turns Oracle Forms object library exports (OLB saved as XML)
// into library knowledge records.
//
// Object libraries store reusable items, triggers and program units grouped
// into tabs. Their PL/SQL lives in TriggerText and ProgramUnitText
// attributes; the rendered Markdown shows a truncated preview of it.
package olb
