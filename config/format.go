package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a config file dialect.
type Format int

const (
	ORACFormat Format = iota
	AIMFormat
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"orac": ORACFormat,
		"conf": ORACFormat,
		"aim":  AIMFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case ORACFormat:
		return []byte("orac"), nil
	case AIMFormat:
		return []byte("aim"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a config format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case ORACFormat:
		return ".conf"
	case AIMFormat:
		return ".aim"
	default:
		return ""
	}
}

// Grammar returns the line grammar for this format.
func (f Format) Grammar() Grammar {
	switch f {
	case AIMFormat:
		return AIMGrammar
	default:
		return ORACGrammar
	}
}

// AllFormats returns all supported formats in preference order. The
// order doubles as the suffix search order when locating config files.
func AllFormats() []Format {
	return []Format{ORACFormat, AIMFormat}
}

// DetectFormat routes a file name to its Format by suffix,
// case-insensitively. Unrecognized suffixes are an error: nothing else
// about a config file announces its dialect.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".conf":
		return ORACFormat, nil
	case ".aim":
		return AIMFormat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}
