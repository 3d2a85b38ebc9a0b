package main

import (
	"fmt"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"
	"github.com/ukirt-ocs/sequence-format/go-sequence/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func lines(cfg *LinesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Lines.Parse(cc, args)
	if err != nil {
		cfg.Lines.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: lines requires -e <expr>", cli.ErrUsage)
	}
	program, err := expr.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: error compiling %q: %v", cli.ErrUsage, cfg.Expr, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		execLines, err := getRawLines(cc, arg)
		if err != nil {
			return err
		}
		for i, line := range execLines {
			keep, err := runBool(program, lineEnv(line, i))
			if err != nil {
				return fmt.Errorf("error evaluating %q on %s line %d: %w", cfg.Expr, arg, i+1, err)
			}
			if keep {
				fmt.Fprintln(cc.Out, line)
			}
		}
	}
	return nil
}

func lineEnv(line string, i int) map[string]any {
	return map[string]any{
		"line":      line,
		"i":         i,
		"directive": token.Classify(line).String(),
		"disabled":  token.Disabled(line),
	}
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: check requires -e <expr>", cli.ErrUsage)
	}
	program, err := expr.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: error compiling %q: %v", cli.ErrUsage, cfg.Expr, err)
	}
	docs, err := getDocs(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	failed := false
	for _, d := range docs {
		pass, err := runBool(program, checkEnv(d))
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", cfg.Expr, d.InputFile(), err)
		}
		if !pass {
			failed = true
			fmt.Fprintf(cc.Out, "check failed: %s\n", d.InputFile())
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkEnv is the expression environment for one sequence. Camera mode
// and waveband resolution errors surface as empty values so expressions
// over them stay total.
func checkEnv(d *sequence.Document) map[string]any {
	headers := map[string]string{}
	for _, name := range d.HeaderNames() {
		v, _ := d.HeaderItem(name)
		headers[name] = v
	}
	configs := map[string]map[string]string{}
	for _, name := range d.ConfigOrder() {
		configs[name] = d.Config(name).Items()
	}
	env := map[string]any{
		"file":       d.InputFile(),
		"instrument": string(d.Instrument()),
		"target":     d.TargetName(),
		"guide":      "",
		"project":    d.ProjectID(),
		"msbid":      d.MSBID(),
		"msbtid":     d.MSBTransactionID(),
		"msbtitle":   d.MSBTitle(),
		"shift":      d.ShiftType(),
		"headers":    headers,
		"configs":    configs,
		"legacy":     d.UsesLegacyCoords(),
		"modes":      []string{},
		"waveband":   "",
	}
	if name, ok := d.GuideName(); ok {
		env["guide"] = name
	}
	if modes, err := d.CameraModes(); err == nil {
		env["modes"] = modes
	}
	if wb, err := d.WaveBandString(); err == nil {
		env["waveband"] = wb
	}
	return env
}

func runBool(program *vm.Program, env map[string]any) (bool, error) {
	out, err := vm.Run(program, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression must yield a bool, got %T", out)
	}
	return b, nil
}
