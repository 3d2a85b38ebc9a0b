package main

import (
	"encoding/json"
	"fmt"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"
	"github.com/ukirt-ocs/sequence-format/go-sequence/coords"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

type coordModel struct {
	Name   string `json:"name" yaml:"name"`
	System string `json:"system" yaml:"system"`
	RA     string `json:"ra" yaml:"ra"`
	Dec    string `json:"dec" yaml:"dec"`
	Units  string `json:"units,omitempty" yaml:"units,omitempty"`
}

type configModel struct {
	Name   string            `json:"name" yaml:"name"`
	Format string            `json:"format" yaml:"format"`
	Path   string            `json:"path,omitempty" yaml:"path,omitempty"`
	Items  map[string]string `json:"items,omitempty" yaml:"items,omitempty"`
}

type docModel struct {
	File         string            `json:"file,omitempty" yaml:"file,omitempty"`
	Instrument   string            `json:"instrument" yaml:"instrument"`
	Target       *coordModel       `json:"target,omitempty" yaml:"target,omitempty"`
	Guide        *coordModel       `json:"guide,omitempty" yaml:"guide,omitempty"`
	LegacyCoords bool              `json:"legacyCoords,omitempty" yaml:"legacyCoords,omitempty"`
	CameraModes  []string          `json:"cameraModes,omitempty" yaml:"cameraModes,omitempty"`
	WaveBands    []string          `json:"waveBands,omitempty" yaml:"waveBands,omitempty"`
	Headers      map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Configs      []configModel     `json:"configs,omitempty" yaml:"configs,omitempty"`
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := getDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for i, d := range docs {
		if i > 0 && !cfg.J {
			fmt.Fprintln(cc.Out, "---")
		}
		m := dumpModel(d)
		var out []byte
		if cfg.J {
			out, err = json.MarshalIndent(m, "", "  ")
		} else {
			out, err = yaml.Marshal(m)
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", d.InputFile(), err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
		if cfg.J {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}

// dumpModel flattens a sequence for encoding. Camera mode and waveband
// resolution errors leave those fields empty rather than failing the dump.
func dumpModel(d *sequence.Document) *docModel {
	m := &docModel{
		File:         d.InputFile(),
		Instrument:   string(d.Instrument()),
		Target:       coordModelOf(d.Target()),
		Guide:        coordModelOf(d.Guide()),
		LegacyCoords: d.UsesLegacyCoords(),
	}
	if modes, err := d.CameraModes(); err == nil {
		m.CameraModes = modes
	}
	if wbs, err := d.WaveBands(); err == nil {
		for _, wb := range wbs {
			m.WaveBands = append(m.WaveBands, wb.String())
		}
	}
	if names := d.HeaderNames(); len(names) > 0 {
		m.Headers = map[string]string{}
		for _, name := range names {
			v, _ := d.HeaderItem(name)
			m.Headers[name] = v
		}
	}
	for _, name := range d.ConfigOrder() {
		c := d.Config(name)
		m.Configs = append(m.Configs, configModel{
			Name:   name,
			Format: c.Format().String(),
			Path:   c.Path(),
			Items:  c.Items(),
		})
	}
	return m
}

func coordModelOf(c *coords.Coord) *coordModel {
	if c == nil {
		return nil
	}
	return &coordModel{Name: c.Name, System: c.System, RA: c.RA, Dec: c.Dec, Units: c.Units}
}
