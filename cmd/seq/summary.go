package main

import (
	"fmt"
	"io"
	"strings"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"

	"github.com/scott-cotton/cli"
)

func summary(cfg *SummaryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Summary.Parse(cc, args)
	if err != nil {
		cfg.Summary.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := getDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for _, d := range docs {
		line, err := d.Summary()
		if err != nil {
			return fmt.Errorf("error summarizing %s: %w", d.InputFile(), err)
		}
		fmt.Fprintln(cc.Out, line)
	}
	return nil
}

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		cfg.Info.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := getDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for i, d := range docs {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		printInfo(cc.Out, d)
	}
	return nil
}

func printInfo(w io.Writer, d *sequence.Document) {
	if d.InputFile() != "" {
		fmt.Fprintf(w, "%-11s %s\n", "file:", d.InputFile())
	}
	fmt.Fprintf(w, "%-11s %s\n", "instrument:", d.Instrument())
	fmt.Fprintf(w, "%-11s %s\n", "target:", d.TargetName())
	if name, ok := d.GuideName(); ok {
		fmt.Fprintf(w, "%-11s %s\n", "guide:", name)
	}
	if d.UsesLegacyCoords() {
		fmt.Fprintf(w, "%-11s legacy SET_ lines\n", "coords:")
	}
	for _, kv := range []struct{ label, value string }{
		{"project:", d.ProjectID()},
		{"msb id:", d.MSBID()},
		{"msb tid:", d.MSBTransactionID()},
		{"msb title:", d.MSBTitle()},
		{"shift:", d.ShiftType()},
	} {
		if kv.value != "" {
			fmt.Fprintf(w, "%-11s %s\n", kv.label, kv.value)
		}
	}
	if modes, err := d.CameraModes(); err == nil && len(modes) > 0 {
		fmt.Fprintf(w, "%-11s %s\n", "modes:", strings.Join(modes, "/"))
	}
	if wb, err := d.WaveBandString(); err == nil && wb != "" {
		fmt.Fprintf(w, "%-11s %s\n", "waveband:", wb)
	}
	if order := d.ConfigOrder(); len(order) > 0 {
		fmt.Fprintf(w, "%-11s %s\n", "configs:", strings.Join(order, " "))
	}
}
