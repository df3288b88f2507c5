// Package forms turns Oracle Forms XML exports into form knowledge records.
//
// Elements are located by tag name anywhere in the document. Tag names are
// compared ignoring case and underscores, so both the upper-case names of
// flattened exports (PROGRAM_UNIT) and the camel-case names written by
// Forms Builder (ProgramUnit) are recognised, whatever their namespace.
//
// The package also provides Import, which copies form records produced by
// earlier tooling into the knowledge tree.
package forms
