// Package coords models the named sky positions a sequence points at.
package coords

import (
	"fmt"
	"strings"

	"github.com/ukirt-ocs/sequence-format/go-sequence/token"
)

// Coord is one named position. System is the coordinate system tag the
// position was given in (J2000, B1950, ...); RA and Dec are carried as
// the original sexagesimal or decimal text, with Units naming what the
// numbers mean when the source says so.
type Coord struct {
	Name   string
	System string
	RA     string
	Dec    string
	Units  string
}

func New(name, system, ra, dec, units string) *Coord {
	return &Coord{Name: name, System: system, RA: ra, Dec: dec, Units: units}
}

func (c *Coord) String() string {
	return fmt.Sprintf("%s %s %s %s", c.Name, c.System, c.RA, c.Dec)
}

// ParseSetLine parses a legacy coordinate line of the form
//
//	SET_<TAG> name system c1 c2 x y
//
// Exactly seven fields are required; any other shape is inert text and
// yields ok false. The trailing two fields are offsets this library has
// no use for. Legacy coordinates are always in seconds. The historical
// TARGET tag is an alias for BASE.
func ParseSetLine(line string) (tag string, c *Coord, ok bool) {
	fs := token.Fields(line)
	if len(fs) != 7 {
		return "", nil, false
	}
	if !strings.HasPrefix(fs[0], "SET_") {
		return "", nil, false
	}
	tag = normalizeTag(fs[0][len("SET_"):])
	if tag == "" {
		return "", nil, false
	}
	return tag, New(fs[1], fs[2], fs[3], fs[4], "seconds"), true
}

func normalizeTag(tag string) string {
	tag = strings.ToUpper(tag)
	if tag == "TARGET" {
		return "BASE"
	}
	return tag
}
