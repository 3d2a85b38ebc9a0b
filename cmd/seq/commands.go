package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "seq").
		WithSynopsis("seq [opts] command [opts]").
		WithDescription("seq is a tool for working with observation sequence files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return seqMain(cfg, cc, args)
		}).
		WithSubs(
			SummaryCommand(cfg),
			InfoCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			ItemCommand(cfg),
			ConfigsCommand(cfg),
			ViewCommand(cfg),
			DumpCommand(cfg),
			LinesCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			WriteCommand(cfg))
}

func SummaryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SummaryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Summary, "summary").
		WithAliases("s", "su").
		WithSynopsis("summary [files]").
		WithDescription("print a one line summary of each sequence").
		WithRun(func(cc *cli.Context, args []string) error {
			return summary(cfg, cc, args)
		})
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Info, "info").
		WithAliases("i").
		WithSynopsis("info [files]").
		WithDescription("print resolved details of each sequence").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <header> [files]").
		WithDescription("get header values from sequences").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithSynopsis("set [opts] <header> <value> [files]").
		WithDescription("set a header in sequences and print the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func ItemCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ItemConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Item, "item").
		WithSynopsis("item <key> [files]").
		WithDescription("look a key up in each loaded instrument config").
		WithRun(func(cc *cli.Context, args []string) error {
			return item(cfg, cc, args)
		})
}

func ConfigsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConfigsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Configs, "configs").
		WithAliases("c").
		WithSynopsis("configs [files]").
		WithDescription("list the instrument configs loaded by each sequence").
		WithRun(func(cc *cli.Context, args []string) error {
			return configs(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view exec files with directives in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-j] [files]").
		WithDescription("dump the resolved sequence model").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func LinesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LinesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Lines, "lines").
		WithAliases("l").
		WithSynopsis("lines -e <expr> [files]").
		WithDescription("print exec lines matching an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lines(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check -e <expr> [files]").
		WithDescription("check sequences against an expression, failing on mismatch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff two exec files line by line").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <jsonpatch> [files]").
		WithDescription("apply a JSON patch to sequence headers and print the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func WriteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WriteConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Write, "write").
		WithAliases("w", "wr").
		WithSynopsis("write [-d dir] [files]").
		WithDescription("write each sequence under a fresh timestamped name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return write(cfg, cc, args)
		})
}
