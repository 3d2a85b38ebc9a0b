package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromLines(t *testing.T) {
	d, err := FromLines([]string{
		"instrument = UFTI",
		"filter     = J98",
		"",
		"filter     = K98",
	}, ORACFormat)
	if err != nil {
		t.Fatal(err)
	}
	// duplicate keys: last write wins
	if v, ok := d.Item("filter"); !ok || v != "K98" {
		t.Errorf("Item(filter) = %q, %v", v, ok)
	}
	if v, ok := d.Item("instrument"); !ok || v != "UFTI" {
		t.Errorf("Item(instrument) = %q, %v", v, ok)
	}
	if _, ok := d.Item("Filter"); ok {
		t.Error("Item(Filter) found; keys are case-sensitive")
	}
	if len(d.Lines()) != 4 {
		t.Errorf("Lines() = %d lines", len(d.Lines()))
	}
}

func TestFromLinesNil(t *testing.T) {
	_, err := FromLines(nil, ORACFormat)
	if !errors.Is(err, ErrBadArgument) {
		t.Errorf("FromLines(nil) err = %v, want ErrBadArgument", err)
	}
}

func TestSetItem(t *testing.T) {
	d, err := FromLines([]string{"camera = imaging"}, ORACFormat)
	if err != nil {
		t.Fatal(err)
	}
	d.SetItem("camera", "spectroscopy")
	if v, _ := d.Item("camera"); v != "spectroscopy" {
		t.Errorf("Item(camera) = %q", v)
	}
	// raw text is untouched
	if diff := cmp.Diff([]string{"camera = imaging"}, d.Lines()); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{path: "flat_k.conf", want: ORACFormat},
		{path: "mich.aim", want: AIMFormat},
		{path: "FLAT_K.CONF", want: ORACFormat},
		{path: "seq.exec", err: true},
		{path: "noext", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := DetectFormat(tt.path)
			if tt.err {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("DetectFormat(%q) err = %v, want ErrUnknownFormat", tt.path, err)
				}
				return
			}
			if err != nil || f != tt.want {
				t.Errorf("DetectFormat(%q) = %v, %v", tt.path, f, err)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mich.aim")
	data := "Michelle AIM file: 1\n10.5 centralWavelength\nspectroscopy camera\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Format() != AIMFormat {
		t.Errorf("Format() = %v", d.Format())
	}
	if d.Path() != path {
		t.Errorf("Path() = %q", d.Path())
	}
	want := map[string]string{"centralWavelength": "10.5", "camera": "spectroscopy"}
	if diff := cmp.Diff(want, d.Items()); diff != "" {
		t.Errorf("Items mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.conf"))
	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("Open(missing) err = %v, want ErrFileAccess", err)
	}
}

func TestOpenBadSuffix(t *testing.T) {
	_, err := Open("something.cfg")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Open(.cfg) err = %v, want ErrUnknownFormat", err)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.conf")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open(empty) err = %v", err)
	}
	if len(d.Items()) != 0 {
		t.Errorf("Items() = %v", d.Items())
	}
}

func TestFormatText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("aim")); err != nil {
		t.Fatal(err)
	}
	if f != AIMFormat {
		t.Errorf("unmarshal = %v", f)
	}
	if ORACFormat.Suffix() != ".conf" || AIMFormat.Suffix() != ".aim" {
		t.Error("Suffix mismatch")
	}
	if _, err := ParseFormat("ini"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(ini) err = %v", err)
	}
}
