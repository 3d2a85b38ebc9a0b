package config

import (
	"strings"

	"github.com/ukirt-ocs/sequence-format/go-sequence/token"
)

// Grammar splits one config line into a key/value pair. ok is false for
// lines that define nothing: blanks, comments, file headers. A Document
// is generalized over its Grammar, so adding a dialect means adding a
// function, not a type.
type Grammar func(line string) (key, value string, ok bool)

// ORACGrammar reads "KEY <separator> VALUE" lines. The line splits on
// whitespace into key, separator and value; the separator is discarded
// without validation and the value is the untouched remainder, spaces
// and all. A key with no value still defines the key, as empty.
func ORACGrammar(line string) (string, string, bool) {
	key := token.First(line)
	if key == "" {
		return "", "", false
	}
	return key, token.Rest(line, 2), true
}

// AIMGrammar reads ".aim" lines, which put the value first:
//
//	VALUE KEY WORDS...
//
// The key is everything after the first field and may contain spaces.
// Lines containing a colon are headers and define nothing, as do lines
// with no key.
func AIMGrammar(line string) (string, string, bool) {
	if strings.Contains(line, ":") {
		return "", "", false
	}
	value := token.First(line)
	if value == "" {
		return "", "", false
	}
	key := token.Rest(line, 1)
	if key == "" {
		return "", "", false
	}
	return key, value, true
}
