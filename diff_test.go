package sequence

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	from := []string{
		"startGroup",
		"setHeader FILTER J98",
		"startObs",
	}
	to := []string{
		"startGroup",
		"setHeader FILTER K98",
		"startObs",
		"breakPoint",
	}
	want := []LineDiff{
		{Op: DiffEqual, Line: "startGroup"},
		{Op: DiffDelete, Line: "setHeader FILTER J98"},
		{Op: DiffInsert, Line: "setHeader FILTER K98"},
		{Op: DiffEqual, Line: "startObs"},
		{Op: DiffInsert, Line: "breakPoint"},
	}
	if diff := cmp.Diff(want, Diff(from, to)); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffEqual(t *testing.T) {
	lines := []string{"a", "b", "a"}
	for _, ld := range Diff(lines, lines) {
		if ld.Op != DiffEqual {
			t.Fatalf("op = %v on %q, want equal", ld.Op, ld.Line)
		}
	}
}

func TestDiffEmpty(t *testing.T) {
	got := Diff(nil, []string{"only"})
	want := []LineDiff{{Op: DiffInsert, Line: "only"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff mismatch (-want +got):\n%s", diff)
	}
	if got := Diff(nil, nil); len(got) != 0 {
		t.Errorf("Diff(nil, nil) = %v", got)
	}
}
