// Package token implements the line grammar shared by exec scripts:
// directive classification, whitespace field splitting, and the quoting
// rules for header values.
package token

import (
	"strings"
)

// Directive identifies the leading keyword of an exec line.
type Directive int

const (
	None Directive = iota
	LoadConfig
	TelConfig
	SetCoord
	SetHeader
	SetInst
	StartGroup
)

func (d Directive) String() string {
	return map[Directive]string{
		None:       "none",
		LoadConfig: "loadConfig",
		TelConfig:  "telConfig",
		SetCoord:   "SET_",
		SetHeader:  "setHeader",
		SetInst:    "set_inst",
		StartGroup: "startGroup",
	}[d]
}

// Classify reports the directive of line. Keyword directives match
// case-insensitively and a leading disable marker is skipped; the SET_
// prefix of coordinate lines matches case-sensitively, since the tag it
// introduces is part of the data.
func Classify(line string) Directive {
	f := First(line)
	if strings.HasPrefix(f, "-") {
		f = f[1:]
	}
	if strings.HasPrefix(f, "SET_") {
		return SetCoord
	}
	switch {
	case strings.EqualFold(f, "loadConfig"):
		return LoadConfig
	case strings.EqualFold(f, "telConfig"):
		return TelConfig
	case strings.EqualFold(f, "setHeader"):
		return SetHeader
	case strings.EqualFold(f, "set_inst"):
		return SetInst
	case strings.EqualFold(f, "startGroup"):
		return StartGroup
	}
	return None
}

// Disabled reports whether line carries the leading "-" marker that
// comments a directive out without removing it.
func Disabled(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "-")
}
