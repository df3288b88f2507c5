package rdf

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

var (
	printableRun = regexp.MustCompile(fmt.Sprintf(`[ -~]{%d,}`, erpbrain.MinPrintableRun))
	tableToken   = regexp.MustCompile(`\b([A-Z][A-Z0-9_]{2,})\b`)
)

// Strings returns the printable ASCII runs of at least
// erpbrain.MinPrintableRun bytes in data, in order of appearance.
func Strings(data []byte) []string {
	matches := printableRun.FindAll(data, -1)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = string(m)
	}
	return out
}

// SQLFragments returns the runs that mention both SELECT and FROM.
func SQLFragments(strs []string) []string {
	out := []string{}
	for _, s := range strs {
		if looksLikeSQL(s) {
			out = append(out, s)
		}
	}
	return out
}

// Tables returns the sorted distinct upper-case tokens that contain an
// underscore and do not start with RPRT_ (report-internal objects).
func Tables(strs []string) []string {
	seen := make(map[string]struct{})
	for _, s := range strs {
		for _, m := range tableToken.FindAllStringSubmatch(s, -1) {
			tok := m[1]
			if strings.Contains(tok, "_") && !strings.HasPrefix(tok, "RPRT_") {
				seen[tok] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Title returns the first run shorter than erpbrain.MaxTitleLength that
// mentions neither SELECT nor FROM.
func Title(strs []string) string {
	for _, s := range strs {
		if len(s) >= erpbrain.MaxTitleLength {
			continue
		}
		upper := strings.ToUpper(s)
		if !strings.Contains(upper, "SELECT") && !strings.Contains(upper, "FROM") {
			return s
		}
	}
	return ""
}

// Scan builds the report record for one binary.
func Scan(filename string, data []byte) erpbrain.ReportScan {
	strs := Strings(data)

	sample := strs
	if len(sample) > erpbrain.ReportSampleSize {
		sample = sample[:erpbrain.ReportSampleSize]
	}

	return erpbrain.ReportScan{
		Filename:         filename,
		Title:            Title(strs),
		SQLFragments:     SQLFragments(strs),
		TablesReferenced: Tables(strs),
		RawStringsSample: sample,
		Note:             erpbrain.ReportScanNote,
	}
}

func looksLikeSQL(s string) bool {
	upper := strings.ToUpper(s)
	return strings.Contains(upper, "SELECT") && strings.Contains(upper, "FROM")
}
