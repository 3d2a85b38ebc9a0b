package main

import (
	"fmt"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := getRawLines(cc, args[0])
	if err != nil {
		return err
	}
	to, err := getRawLines(cc, args[1])
	if err != nil {
		return err
	}
	useColor := cfg.useColor(cc.Out)
	differs := false
	for _, ld := range sequence.Diff(from, to) {
		if ld.Op != sequence.DiffEqual {
			differs = true
		}
		line := ld.Op.String() + " " + ld.Line
		switch {
		case useColor && ld.Op == sequence.DiffDelete:
			fmt.Fprintln(cc.Out, color.RedString("%s", line))
		case useColor && ld.Op == sequence.DiffInsert:
			fmt.Fprintln(cc.Out, color.GreenString("%s", line))
		default:
			fmt.Fprintln(cc.Out, line)
		}
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
