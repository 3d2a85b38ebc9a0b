// Package config reads per-instrument configuration files referenced by
// exec scripts.
//
// # Usage
//
//	cfg, err := config.Open("configs/flat_k.conf")
//	if err != nil { ... }
//	filter, ok := cfg.Item("filter")
//
// Two dialects exist, routed by file suffix: ORAC ".conf" files and AIM
// ".aim" files. Both reduce to flat key/value items; the raw lines are
// kept alongside, untouched.
package config

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"slices"
)

// Document is one parsed instrument configuration.
type Document struct {
	lines  []string
	items  map[string]string
	path   string
	format Format
}

// FromLines parses lines with f's grammar. A later occurrence of a key
// overwrites an earlier one; only the last survives in Items.
func FromLines(lines []string, f Format) (*Document, error) {
	if lines == nil {
		return nil, fmt.Errorf("%w: nil config lines", ErrBadArgument)
	}
	d := &Document{
		lines:  slices.Clone(lines),
		items:  map[string]string{},
		format: f,
	}
	g := f.Grammar()
	for _, line := range lines {
		if k, v, ok := g(line); ok {
			d.items[k] = v
		}
	}
	return d, nil
}

// Open reads and parses the config file at path, routing on its suffix.
func Open(path string) (*Document, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	d, err := FromLines(lines, f)
	if err != nil {
		return nil, err
	}
	d.path = path
	return d, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	lines := []string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFileAccess, path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing %s: %v", ErrFileAccess, path, err)
	}
	return lines, nil
}

// Item returns the value defined for key. Keys are case-sensitive;
// absence is not an error.
func (d *Document) Item(key string) (string, bool) {
	v, ok := d.items[key]
	return v, ok
}

// SetItem defines or overwrites an item. The raw lines are not touched;
// items do not write back to text.
func (d *Document) SetItem(key, value string) {
	d.items[key] = value
}

// Items returns a copy of the item map.
func (d *Document) Items() map[string]string {
	return maps.Clone(d.items)
}

func (d *Document) Lines() []string {
	return d.lines
}

// Path returns the file the document came from, or "" if it was built
// from lines.
func (d *Document) Path() string {
	return d.path
}

func (d *Document) Format() Format {
	return d.format
}
