package sequence

import (
	"fmt"
	"strings"

	"github.com/ukirt-ocs/sequence-format/go-sequence/instr"
	"github.com/ukirt-ocs/sequence-format/go-sequence/token"
	"github.com/ukirt-ocs/sequence-format/go-sequence/waveband"
)

// Instrument resolves which instrument the sequence drives: the first
// set_inst line wins, then the first config defining an "instrument"
// item, then the input file name's prefix before the first underscore.
// The result is always upper-cased; an unresolvable sequence reports
// instr.Unknown.
func (d *Document) Instrument() instr.Instrument {
	for _, line := range d.lines {
		if token.Classify(line) != token.SetInst {
			continue
		}
		if fs := token.Fields(line); len(fs) >= 2 {
			return instr.Parse(fs[1])
		}
	}
	for _, name := range d.order {
		if v, ok := d.configs[name].Item("instrument"); ok {
			return instr.Parse(v)
		}
	}
	if pre, _, ok := strings.Cut(d.inputFile, "_"); ok && pre != "" {
		return instr.Parse(pre)
	}
	return instr.Unknown
}

// ConfigValue is one config's take on an item: which config, what it
// said, and whether it said anything at all.
type ConfigValue struct {
	Config string
	Value  string
	OK     bool
}

// ConfigItem collects key across the configs in execution order. The
// result always has one slot per config, so an undefined item stays
// visible as an undefined slot rather than shifting later ones.
func (d *Document) ConfigItem(key string) []ConfigValue {
	vals := make([]ConfigValue, len(d.order))
	for i, name := range d.order {
		v, ok := d.configs[name].Item(key)
		vals[i] = ConfigValue{Config: name, Value: v, OK: ok}
	}
	return vals
}

// configItemAny is ConfigItem trying alternative key spellings per
// config, first defined wins.
func (d *Document) configItemAny(keys ...string) []ConfigValue {
	vals := make([]ConfigValue, len(d.order))
	for i, name := range d.order {
		cfg := d.configs[name]
		vals[i] = ConfigValue{Config: name}
		for _, k := range keys {
			if v, ok := cfg.Item(k); ok {
				vals[i].Value, vals[i].OK = v, true
				break
			}
		}
	}
	return vals
}

// collapse drops undefined slots and collapses consecutive duplicates,
// so A,A,B,A becomes A,B,A: a revisited setting still shows up, only
// back-to-back repeats fold.
func collapse(vals []ConfigValue) []string {
	var out []string
	for _, v := range vals {
		if !v.OK {
			continue
		}
		if n := len(out); n > 0 && out[n-1] == v.Value {
			continue
		}
		out = append(out, v.Value)
	}
	return out
}

// CameraModes returns the camera modes the sequence runs through, in
// config order. UFTI and WFCAM only image and CGS4 only does
// spectroscopy; Michelle and UIST read the "camera" item of each
// config, skipping configs that leave it unset.
func (d *Document) CameraModes() ([]string, error) {
	switch d.Instrument() {
	case instr.UFTI, instr.WFCAM:
		return []string{instr.ModeImaging}, nil
	case instr.CGS4:
		return []string{instr.ModeSpectroscopy}, nil
	case instr.Michelle, instr.UIST:
		return collapse(d.ConfigItem("camera")), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownInstrument, d.Instrument())
}

// WaveBands returns the wavebands the sequence observes through, one
// per distinct consecutive setting, in config order. Which config item
// supplies the value depends on the instrument, and for Michelle and
// UIST on the camera mode: spectroscopy reads a wavelength, anything
// else a filter. A Michelle or UIST sequence whose configs never set a
// camera cannot be resolved either way.
func (d *Document) WaveBands() ([]waveband.WaveBand, error) {
	inst := d.Instrument()
	var (
		kind waveband.Kind
		keys []string
	)
	switch inst {
	case instr.UFTI, instr.WFCAM:
		kind, keys = waveband.Filter, []string{"filter", "Filter"}
	case instr.CGS4:
		kind, keys = waveband.Wavelength, []string{"wavelength", "Wavelength"}
	case instr.Michelle, instr.UIST:
		modes, err := d.CameraModes()
		if err != nil {
			return nil, err
		}
		if len(modes) == 0 {
			return nil, fmt.Errorf("%w: no camera item in any config of %s", ErrAmbiguousMode, inst)
		}
		if modes[0] == instr.ModeSpectroscopy {
			kind, keys = waveband.Wavelength, []string{"centralWavelength", "Wavelength"}
		} else {
			kind, keys = waveband.Filter, []string{"filter", "Filter"}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstrument, inst)
	}
	var bands []waveband.WaveBand
	for _, v := range collapse(d.configItemAny(keys...)) {
		bands = append(bands, waveband.New(string(inst), kind, v))
	}
	return bands, nil
}

// WaveBandString joins the waveband values with "/".
func (d *Document) WaveBandString() (string, error) {
	bands, err := d.WaveBands()
	if err != nil {
		return "", err
	}
	vals := make([]string, len(bands))
	for i, b := range bands {
		vals[i] = b.String()
	}
	return strings.Join(vals, "/"), nil
}
