package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator computes content checksums.
type Calculator interface {
	// CalculateRaw hashes the exact bytes. The writer uses it to detect
	// output files that would not change.
	CalculateRaw(content []byte) string

	// CalculateNormalized hashes PL/SQL code with comments, case and
	// whitespace differences removed. Two triggers that differ only in
	// formatting share a normalized checksum.
	CalculateNormalized(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
// Normalization:
//  1. Remove PL/SQL comments (-- and /* */) while preserving string literals
//  2. Convert to lowercase
//  3. Collapse whitespace to single spaces
//
// SHA256 is a zero-size type and is safe for concurrent use.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

func (c SHA256) normalize(content string) string {
	cleaned := c.removeComments(content)

	var b strings.Builder
	b.Grow(len(cleaned))

	lastWasSpace := false
	for _, r := range cleaned {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(unicode.ToLower(r))
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

type commentState int

const (
	csNormal commentState = iota
	csLineComment
	csBlockComment
	csSingleQuote
	csAltQuote
)

// removeComments strips comments while keeping string literals intact.
// It understands '' escapes and Oracle alternative quoting (q'[...]',
// q'{...}', q'<...>', q'(...)' and q'X...X' for any other delimiter).
// PL/SQL block comments do not nest.
func (c SHA256) removeComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := csNormal
	var closer byte
	i := 0

	for i < len(content) {
		ch := content[i]
		var next byte
		if i+1 < len(content) {
			next = content[i+1]
		}

		switch state {
		case csNormal:
			switch {
			case ch == '-' && next == '-':
				state = csLineComment
				b.WriteByte(' ')
				i += 2
			case ch == '/' && next == '*':
				state = csBlockComment
				b.WriteByte(' ')
				i += 2
			case (ch == 'q' || ch == 'Q') && next == '\'' && i+2 < len(content) && startsWord(content, i):
				closer = altQuoteCloser(content[i+2])
				state = csAltQuote
				b.WriteString(content[i : i+3])
				i += 3
			case ch == '\'':
				state = csSingleQuote
				b.WriteByte(ch)
				i++
			default:
				b.WriteByte(ch)
				i++
			}

		case csLineComment:
			if ch == '\n' {
				b.WriteByte(ch)
				state = csNormal
			}
			i++

		case csBlockComment:
			if ch == '*' && next == '/' {
				state = csNormal
				i += 2
			} else {
				i++
			}

		case csSingleQuote:
			b.WriteByte(ch)
			if ch == '\'' {
				if next == '\'' {
					b.WriteByte(next)
					i += 2
					continue
				}
				state = csNormal
			}
			i++

		case csAltQuote:
			if ch == closer && next == '\'' {
				b.WriteByte(ch)
				b.WriteByte(next)
				state = csNormal
				i += 2
			} else {
				b.WriteByte(ch)
				i++
			}
		}
	}

	return b.String()
}

// startsWord reports whether position i is not preceded by an identifier
// character, so that names ending in q (e.g. seq'...) are not taken as
// alternative quotes.
func startsWord(s string, i int) bool {
	if i == 0 {
		return true
	}
	p := s[i-1]
	return !(p == '_' || p == '$' || p == '#' ||
		(p >= 'a' && p <= 'z') || (p >= 'A' && p <= 'Z') || (p >= '0' && p <= '9'))
}

func altQuoteCloser(open byte) byte {
	switch open {
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	case '(':
		return ')'
	}
	return open
}
