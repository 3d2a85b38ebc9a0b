package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func write(cfg *WriteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Write.Parse(cc, args)
	if err != nil {
		cfg.Write.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	docs, err := getDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for _, d := range docs {
		path, err := d.Write(dir)
		if err != nil {
			return fmt.Errorf("error writing %s: %w", d.InputFile(), err)
		}
		fmt.Fprintln(cc.Out, path)
	}
	return nil
}
