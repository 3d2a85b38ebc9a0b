// Package tcs reads telescope control system configuration files, the
// XML companions an exec references through telConfig lines.
package tcs

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/ukirt-ocs/sequence-format/go-sequence/config"
	"github.com/ukirt-ocs/sequence-format/go-sequence/coords"
)

var (
	ErrParse      = errors.New("tcs parse error")
	ErrFileAccess = config.ErrFileAccess
)

// Config is a parsed TCS configuration: a set of named base positions.
type Config struct {
	set *coords.Set
}

type xmlConfig struct {
	XMLName   xml.Name      `xml:"TCSConfiguration"`
	Positions []xmlPosition `xml:"BasePosition"`
}

type xmlPosition struct {
	Type   string `xml:"TYPE,attr"`
	Name   string `xml:"TargetName"`
	System string `xml:"System"`
	C1     string `xml:"C1"`
	C2     string `xml:"C2"`
}

// Parse decodes a TCS configuration document. Positions without a TYPE
// attribute have nothing to file them under and are dropped.
func Parse(d []byte) (*Config, error) {
	xc := &xmlConfig{}
	if err := xml.Unmarshal(d, xc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	set := coords.NewSet()
	for _, p := range xc.Positions {
		if p.Type == "" {
			continue
		}
		set.Put(p.Type, coords.New(p.Name, p.System, p.C1, p.C2, ""))
	}
	return &Config{set: set}, nil
}

// ReadFile reads and parses the TCS configuration at path.
func ReadFile(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	c, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Coords returns the position filed under tag, or nil. Lookup is
// case-insensitive.
func (c *Config) Coords(tag string) *coords.Coord {
	return c.set.Get(tag)
}

// Set returns the positions as a coords.Set.
func (c *Config) Set() *coords.Set {
	return c.set
}
