package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a JSON patch argument", cli.ErrUsage)
	}
	patchData, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	docs, err := getDocs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	for _, d := range docs {
		if err := d.PatchHeaders(patchData); err != nil {
			return fmt.Errorf("error patching %s: %w", d.InputFile(), err)
		}
		if err := writeDoc(cc.Out, d); err != nil {
			return err
		}
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if !cfg.File {
		return []byte(arg), nil
	}
	if arg == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading patch from stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading patch %s: %w", arg, err)
	}
	return d, nil
}
