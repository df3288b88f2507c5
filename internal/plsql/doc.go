// Package plsql lifts trigger and program unit code out of form records.
//
// Every trigger and program unit with a non-empty body becomes one
// PLSQLUnit file under knowledge/procedures, annotated with the tables its
// code touches. An INDEX.md summarises the units by type and groups units
// whose code is identical once comments, case and whitespace are ignored.
//
// Table detection is a lexical heuristic: it looks at the word following
// FROM, INSERT INTO, UPDATE and DELETE FROM. It does not parse PL/SQL, so
// cursor names, aliases in subqueries and the like can appear as tables.
package plsql
