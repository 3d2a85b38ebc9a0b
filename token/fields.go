package token

import (
	"strings"
	"unicode"
)

// Fields splits line on runs of whitespace.
func Fields(line string) []string {
	return strings.Fields(line)
}

// First returns the first field of line, or "" for a blank line.
func First(line string) string {
	fs := strings.Fields(line)
	if len(fs) == 0 {
		return ""
	}
	return fs[0]
}

// Rest returns the remainder of line after its first n fields, with
// surrounding whitespace trimmed. Interior spacing is preserved, so a
// value containing spaces comes back intact. Rest returns "" when line
// has n or fewer fields.
func Rest(line string, n int) string {
	rest := line
	for ; n > 0; n-- {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			return ""
		}
		rest = rest[i:]
	}
	return strings.TrimSpace(rest)
}
