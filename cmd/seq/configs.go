package main

import (
	"io"
	"os"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force color output'"`
	Verbose bool `cli:"name=v aliases=verbose desc='trace config and target file resolution'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) docOpts() []sequence.Option {
	if cfg.Verbose {
		return []sequence.Option{sequence.WithLogger(theLog)}
	}
	return nil
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type SummaryConfig struct {
	*MainConfig

	Summary *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Info *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	After string `cli:"name=after desc='insert new headers after the first line containing this text'"`

	Set *cli.Command
}

type ItemConfig struct {
	*MainConfig

	Item *cli.Command
}

type ConfigsConfig struct {
	*MainConfig

	Configs *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig
	J bool `cli:"name=j aliases=json desc='dump as JSON instead of YAML'"`

	Dump *cli.Command
}

type LinesConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='boolean expression over line, i, directive, disabled'"`

	Lines *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='boolean expression over the sequence'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type WriteConfig struct {
	*MainConfig
	Dir string `cli:"name=d aliases=dir desc='destination directory (default .)'"`

	Write *cli.Command
}
