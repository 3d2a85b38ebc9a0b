package main

import (
	"fmt"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a header name", cli.ErrUsage)
	}
	name := args[0]
	docs, err := getDocs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	for _, d := range docs {
		for _, v := range d.HeaderItems(name) {
			fmt.Fprintln(cc.Out, v)
		}
	}
	return nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a header name and a value", cli.ErrUsage)
	}
	name, value := args[0], args[1]
	docs, err := getDocs(cfg.MainConfig, cc, args[2:])
	if err != nil {
		return err
	}
	var hOpts []sequence.SetHeaderOption
	if cfg.After != "" {
		hOpts = append(hOpts, sequence.InsertAfter(cfg.After))
	}
	for _, d := range docs {
		d.SetHeader(name, value, hOpts...)
		if err := writeDoc(cc.Out, d); err != nil {
			return err
		}
	}
	return nil
}
