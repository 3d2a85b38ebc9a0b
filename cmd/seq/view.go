package main

import (
	"fmt"

	"github.com/ukirt-ocs/sequence-format/go-sequence/token"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

type Colors struct {
	Keyword  func(string, ...any) string
	Name     func(string, ...any) string
	Value    func(string, ...any) string
	Disabled func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Keyword:  color.RGB(74, 92, 138).SprintfFunc(),
		Name:     color.RGB(196, 96, 16).SprintfFunc(),
		Value:    color.RGB(8, 196, 16).SprintfFunc(),
		Disabled: color.RGB(96, 96, 96).SprintfFunc(),
	}
}

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var colors *Colors
	if cfg.useColor(cc.Out) {
		colors = NewColors()
	}
	for _, arg := range args {
		lines, err := getRawLines(cc, arg)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(cc.Out, colorize(colors, line))
		}
	}
	return nil
}

// colorize renders one exec line, keyword then name then the rest.
// Gaps between the first two tokens collapse to a single space.
func colorize(colors *Colors, line string) string {
	if colors == nil {
		return line
	}
	if token.Disabled(line) {
		return colors.Disabled("%s", line)
	}
	if token.Classify(line) == token.None {
		return line
	}
	fs := token.Fields(line)
	out := colors.Keyword("%s", fs[0])
	if len(fs) > 1 {
		out += " " + colors.Name("%s", fs[1])
	}
	if rest := token.Rest(line, 2); rest != "" {
		out += " " + colors.Value("%s", rest)
	}
	return out
}
