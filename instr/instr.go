// Package instr names the instruments a sequence can drive, plus the
// per-instrument quirks of the output file naming scheme.
package instr

import "strings"

// Instrument is an upper-cased instrument name. Unrecognized names are
// carried as is so callers can still report what was asked for.
type Instrument string

const (
	UFTI     Instrument = "UFTI"
	CGS4     Instrument = "CGS4"
	Michelle Instrument = "MICHELLE"
	UIST     Instrument = "UIST"
	WFCAM    Instrument = "WFCAM"
	Unknown  Instrument = "UNKNOWN"
)

// Camera modes as they appear in instrument config "camera" items.
const (
	ModeImaging      = "imaging"
	ModeSpectroscopy = "spectroscopy"
	ModeIFU          = "ifu"
)

// Parse maps s onto an Instrument, upper-casing it. Every input is
// accepted; use Known to test for an instrument this package
// understands.
func Parse(s string) Instrument {
	return Instrument(strings.ToUpper(s))
}

func (i Instrument) Known() bool {
	switch i {
	case UFTI, CGS4, Michelle, UIST, WFCAM:
		return true
	}
	return false
}

func (i Instrument) String() string {
	return string(i)
}

// FileName returns the instrument's spelling in output exec file names.
// Michelle historically writes mixed case; everything else writes the
// upper-case name.
func (i Instrument) FileName() string {
	if i == Michelle {
		return "Michelle"
	}
	return string(i)
}

// TimestampMillis reports whether output file names for this instrument
// carry a millisecond component. Michelle's naming predates the finer
// timestamps.
func (i Instrument) TimestampMillis() bool {
	return i != Michelle
}
