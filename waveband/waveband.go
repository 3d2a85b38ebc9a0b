// Package waveband carries the filter or wavelength a sequence observes
// through.
package waveband

import (
	"errors"
	"fmt"
)

// Kind distinguishes a filter name from a wavelength figure.
type Kind int

const (
	Filter Kind = iota
	Wavelength
)

var ErrBadKind = errors.New("bad waveband kind")

func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"filter":     Filter,
		"wavelength": Wavelength,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Filter:
		return []byte("filter"), nil
	case Wavelength:
		return []byte("wavelength"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a waveband kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

// WaveBand is one instrument configuration's waveband. Value is the
// text of the config item it came from: a filter name such as "J98" or
// a wavelength such as "10.5".
type WaveBand struct {
	Instrument string
	Kind       Kind
	Value      string
}

func New(instrument string, kind Kind, value string) WaveBand {
	return WaveBand{Instrument: instrument, Kind: kind, Value: value}
}

func (w WaveBand) String() string {
	return w.Value
}
