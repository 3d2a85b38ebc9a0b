package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func item(cfg *ItemConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Item.Parse(cc, args)
	if err != nil {
		cfg.Item.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: item requires one argument, a config key", cli.ErrUsage)
	}
	key := args[0]
	docs, err := getDocs(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	for _, d := range docs {
		for _, cv := range d.ConfigItem(key) {
			if !cv.OK {
				fmt.Fprintf(cc.Out, "%s: (undefined)\n", cv.Config)
				continue
			}
			fmt.Fprintf(cc.Out, "%s: %s\n", cv.Config, cv.Value)
		}
	}
	return nil
}

func configs(cfg *ConfigsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Configs.Parse(cc, args)
	if err != nil {
		cfg.Configs.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := getDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	for _, d := range docs {
		for _, name := range d.ConfigOrder() {
			c := d.Config(name)
			fmt.Fprintf(cc.Out, "%s\t%s\t%d items\t%s\n",
				name, c.Format(), len(c.Items()), c.Path())
		}
	}
	return nil
}
