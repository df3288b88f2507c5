package plsql

import (
	"fmt"
	"strings"
	"unicode"
)

// SafeName replaces every character other than a letter, digit,
// underscore, dot or hyphen with an underscore.
func SafeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-' {
			return r
		}
		return '_'
	}, name)
}

// fileNamer hands out unique file names within one run. Names are
// reserved case-insensitively so outputs survive case-folding filesystems.
type fileNamer struct {
	used map[string]struct{}
}

func newFileNamer() *fileNamer {
	return &fileNamer{used: make(map[string]struct{})}
}

// next returns "<safe>.json", or "<safe>_N.json" with the smallest N >= 2
// that is still free.
func (n *fileNamer) next(unitName string) string {
	base := SafeName(unitName)
	candidate := base + ".json"
	for i := 2; n.taken(candidate); i++ {
		candidate = fmt.Sprintf("%s_%d.json", base, i)
	}
	n.used[strings.ToLower(candidate)] = struct{}{}
	return candidate
}

func (n *fileNamer) taken(name string) bool {
	_, ok := n.used[strings.ToLower(name)]
	return ok
}
