package sequence

import (
	"fmt"
	"strings"

	"github.com/ukirt-ocs/sequence-format/go-sequence/instr"
)

// Summary renders the one-line account operators scan in queue
// listings: instrument, target, waveband and mode, fixed width. Only
// the target column truncates; the others overflow rather than lose
// information.
func (d *Document) Summary() (string, error) {
	wb, err := d.WaveBandString()
	if err != nil {
		return "", err
	}
	mode, err := d.modeString()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%-10s %-15.15s %-12s %-15s", d.Instrument(), d.TargetName(), wb, mode), nil
}

// modeString is the summary's mode column: the fixed mode for
// single-mode instruments, otherwise the grating or disperser settings
// the configs step through.
func (d *Document) modeString() (string, error) {
	switch d.Instrument() {
	case instr.UFTI, instr.WFCAM:
		return instr.ModeImaging, nil
	case instr.CGS4:
		return strings.Join(collapse(d.ConfigItem("grating")), "/"), nil
	case instr.Michelle, instr.UIST:
		modes, err := d.CameraModes()
		if err != nil {
			return "", err
		}
		if len(modes) > 0 && modes[0] == instr.ModeImaging {
			return instr.ModeImaging, nil
		}
		return strings.Join(collapse(d.ConfigItem("disperser")), "/"), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownInstrument, d.Instrument())
}
