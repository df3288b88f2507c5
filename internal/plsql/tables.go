package plsql

import (
	"regexp"
	"sort"
	"strings"
)

const tableName = `([a-zA-Z0-9_$.]+)`

var tablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bFROM\s+` + tableName),
	regexp.MustCompile(`(?i)\bINSERT\s+INTO\s+` + tableName),
	regexp.MustCompile(`(?i)\bUPDATE\s+` + tableName),
	regexp.MustCompile(`(?i)\bDELETE\s+FROM\s+` + tableName),
}

// ExtractTables returns the upper-case, schema-stripped, sorted and
// de-duplicated table names referenced by code.
func ExtractTables(code string) []string {
	seen := make(map[string]struct{})
	for _, re := range tablePatterns {
		for _, m := range re.FindAllStringSubmatch(code, -1) {
			table := strings.ToUpper(strings.TrimSpace(m[1]))
			if i := strings.LastIndex(table, "."); i >= 0 {
				table = table[i+1:]
			}
			seen[table] = struct{}{}
		}
	}

	tables := make([]string, 0, len(seen))
	for t := range seen {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	return tables
}
