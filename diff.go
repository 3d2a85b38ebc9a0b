package sequence

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp classifies one line of a Diff.
type DiffOp int

const (
	DiffDelete DiffOp = iota
	DiffEqual
	DiffInsert
)

func (op DiffOp) String() string {
	return map[DiffOp]string{
		DiffDelete: "-",
		DiffEqual:  " ",
		DiffInsert: "+",
	}[op]
}

// LineDiff is one line of diff output.
type LineDiff struct {
	Op   DiffOp
	Line string
}

// Diff compares two execs line by line. Each distinct line maps to a
// rune and the diff runs over the rune strings, so a reordered or
// edited line never produces sub-line noise.
func Diff(from, to []string) []LineDiff {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var res []LineDiff
	for i := range diffs {
		diff := &diffs[i]
		var op DiffOp
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = DiffDelete
		case diffpatch.DiffEqual:
			op = DiffEqual
		case diffpatch.DiffInsert:
			op = DiffInsert
		}
		for _, r := range diff.Text {
			res = append(res, LineDiff{Op: op, Line: runeMap[r]})
		}
	}
	return res
}

func mapLinesTo(m map[string]rune, im map[rune]string, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, line := range lines {
		r, ok := m[line]
		if !ok {
			r = rune(len(m))
			m[line] = r
			im[r] = line
		}
		rs[i] = r
	}
	return rs
}
