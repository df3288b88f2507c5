// Package knowledge resolves the raw input and knowledge output directories
// of a project root.
package knowledge

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Layout maps pipeline inputs and outputs onto a project root.
type Layout struct {
	Root string
}

// New returns the layout rooted at root. An empty root means ".".
func New(root string) Layout {
	if root == "" {
		root = "."
	}
	return Layout{Root: filepath.Clean(root)}
}

// Resolve joins p onto the root unless p is already absolute.
func (l Layout) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(l.Root, p)
}

func (l Layout) FormsXML() string      { return l.Resolve("raw/forms_xml") }
func (l Layout) MenusXML() string      { return l.Resolve("raw/menus_xml") }
func (l Layout) OLBXML() string        { return l.Resolve("raw/olb_xml") }
func (l Layout) ReportsRDF() string    { return l.Resolve("raw/reports_rdf") }
func (l Layout) SchemaForms() string   { return l.Resolve("raw/schema/forms") }
func (l Layout) AnalysisForms() string { return l.Resolve("raw/analysis/forms") }

func (l Layout) Forms() string      { return l.Resolve("knowledge/forms") }
func (l Layout) Menus() string      { return l.Resolve("knowledge/menus") }
func (l Layout) Libs() string       { return l.Resolve("knowledge/libs") }
func (l Layout) Procedures() string { return l.Resolve("knowledge/procedures") }
func (l Layout) Reports() string    { return l.Resolve("knowledge/reports") }
func (l Layout) Tables() string     { return l.Resolve("knowledge/tables") }

// BaseName turns a record name into an output file base name. The name is
// lower-cased and every character other than a letter, digit, underscore,
// dot or hyphen becomes an underscore, so the result never leaves the
// output directory. A leading ".." is replaced by "_".
func BaseName(name string) string {
	base := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-' {
			return r
		}
		return '_'
	}, strings.ToLower(name))
	if strings.HasPrefix(base, "..") {
		base = "_" + base[2:]
	}
	return base
}
