package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	sequence "github.com/ukirt-ocs/sequence-format/go-sequence"

	"github.com/scott-cotton/cli"
)

// getDoc loads one sequence argument, "-" meaning stdin. Sequences read
// from stdin resolve configs relative to the working directory.
func getDoc(cfg *MainConfig, cc *cli.Context, arg string) (*sequence.Document, error) {
	if arg == "-" {
		lines, err := readLines(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return sequence.New(lines, cfg.docOpts()...)
	}
	return sequence.Open(arg, cfg.docOpts()...)
}

func getDocs(cfg *MainConfig, cc *cli.Context, args []string) ([]*sequence.Document, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	docs := make([]*sequence.Document, 0, len(args))
	for _, arg := range args {
		d, err := getDoc(cfg, cc, arg)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", arg, err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// getRawLines reads an exec argument without resolving anything,
// "-" meaning stdin.
func getRawLines(cc *cli.Context, arg string) ([]string, error) {
	if arg == "-" {
		return readLines(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	lines := strings.Split(string(d), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	lines := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func writeDoc(w io.Writer, d *sequence.Document) error {
	for _, line := range d.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
