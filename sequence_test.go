package sequence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ukirt-ocs/sequence-format/go-sequence/coords"
)

const tcsSample = `<?xml version="1.0"?>
<TCSConfiguration>
  <BasePosition TYPE="BASE">
    <TargetName>m31</TargetName>
    <System>J2000</System>
    <C1>00:42:44.3</C1>
    <C2>+41:16:09</C2>
  </BasePosition>
  <BasePosition TYPE="GUIDE">
    <TargetName>gsc1234</TargetName>
    <System>J2000</System>
    <C1>00:43:01.0</C1>
    <C2>+41:20:00</C2>
  </BasePosition>
</TCSConfiguration>
`

// writeFiles lays out a directory tree for search and parse tests and
// returns its root.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestNewNilLines(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, ErrBadArgument) {
		t.Errorf("New(nil) err = %v, want ErrBadArgument", err)
	}
}

func TestOpenParse(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"exec/obs.exec": "startGroup\nloadConfig flat_k\ntelConfig targets.xml\nsetHeader PROJECT U/06A/55\nstartObs\n",
		"exec/flat_k.conf": "instrument = UFTI\nfilter     = K98\n",
		"exec/targets.xml": tcsSample,
	})
	d, err := Open(filepath.Join(root, "exec", "obs.exec"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"flat_k"}, d.ConfigOrder()); diff != "" {
		t.Errorf("ConfigOrder mismatch (-want +got):\n%s", diff)
	}
	cfg := d.Config("flat_k")
	if cfg == nil {
		t.Fatal("Config(flat_k) = nil")
	}
	if v, _ := cfg.Item("filter"); v != "K98" {
		t.Errorf("Item(filter) = %q", v)
	}
	if d.Config("absent") != nil {
		t.Error("Config(absent) != nil")
	}
	if d.UsesLegacyCoords() {
		t.Error("UsesLegacyCoords = true, want TCS coords")
	}
	if got := d.TargetName(); got != "m31" {
		t.Errorf("TargetName = %q", got)
	}
	if name, ok := d.GuideName(); !ok || name != "gsc1234" {
		t.Errorf("GuideName = %q, %v", name, ok)
	}
	if d.InputFile() != "obs.exec" {
		t.Errorf("InputFile = %q", d.InputFile())
	}
	if d.Modified() {
		t.Error("Modified = true after plain load")
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "none.exec"))
	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("Open(missing) err = %v, want ErrFileAccess", err)
	}
}

func TestLegacyCoords(t *testing.T) {
	d, err := New([]string{
		"SET_TARGET ngc253 B1950 00:45:06 -25:33:40 0 0",
		"SET_GUIDE gstar R 01:02:03 +04:05:06 0 0",
		"SET_BROKEN only five fields here",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !d.UsesLegacyCoords() {
		t.Error("UsesLegacyCoords = false")
	}
	want := coords.New("ngc253", "B1950", "00:45:06", "-25:33:40", "seconds")
	if diff := cmp.Diff(want, d.Target()); diff != "" {
		t.Errorf("Target mismatch (-want +got):\n%s", diff)
	}
	// TARGET stores under the BASE tag
	if diff := cmp.Diff(want, d.Coords("base")); diff != "" {
		t.Errorf("Coords(base) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"BASE", "GUIDE"}, d.CoordTags()); diff != "" {
		t.Errorf("CoordTags mismatch (-want +got):\n%s", diff)
	}
}

func TestTCSWinsOverLegacy(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"obs.exec":    "SET_TARGET legacy J2000 0 0 0 0\ntelConfig targets.xml\n",
		"targets.xml": tcsSample,
	})
	d, err := Open(filepath.Join(root, "obs.exec"))
	if err != nil {
		t.Fatal(err)
	}
	if d.UsesLegacyCoords() {
		t.Error("UsesLegacyCoords = true")
	}
	if got := d.TargetName(); got != "m31" {
		t.Errorf("TargetName = %q, want the TCS target", got)
	}
}

func TestNoCoords(t *testing.T) {
	d, err := New([]string{"startGroup"})
	if err != nil {
		t.Fatal(err)
	}
	if got := d.TargetName(); got != "NONE" {
		t.Errorf("TargetName = %q, want NONE", got)
	}
	if _, ok := d.GuideName(); ok {
		t.Error("GuideName ok = true")
	}
	if d.Coords("BASE") != nil {
		t.Error("Coords(BASE) != nil")
	}
	if d.CoordTags() != nil {
		t.Error("CoordTags != nil")
	}
}

func TestConfigOrder(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"obs.exec": "loadConfig a\nloadConfig b\nloadConfig a\n",
		"a.conf":   "camera = imaging\n",
		"b.conf":   "camera = spectroscopy\n",
	})
	d, err := Open(filepath.Join(root, "obs.exec"))
	if err != nil {
		t.Fatal(err)
	}
	// re-loading a config keeps its first position
	if diff := cmp.Diff([]string{"a", "b"}, d.ConfigOrder()); diff != "" {
		t.Errorf("ConfigOrder mismatch (-want +got):\n%s", diff)
	}
	if err := d.SetConfigOrder([]string{"b", "a"}); !errors.Is(err, ErrConfigOrderSet) {
		t.Errorf("SetConfigOrder after parse err = %v, want ErrConfigOrderSet", err)
	}
}

func TestSetConfigOrderOnce(t *testing.T) {
	d, err := New([]string{"startGroup"})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetConfigOrder([]string{"x"}); err != nil {
		t.Fatalf("first SetConfigOrder err = %v", err)
	}
	if err := d.SetConfigOrder([]string{"y"}); !errors.Is(err, ErrConfigOrderSet) {
		t.Errorf("second SetConfigOrder err = %v, want ErrConfigOrderSet", err)
	}
}

func TestConfigNotFound(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"obs.exec": "loadConfig nowhere\n",
	})
	_, err := Open(filepath.Join(root, "obs.exec"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Open err = %v, want ErrConfigNotFound", err)
	}
}

func TestDisabledLoadSkipped(t *testing.T) {
	// a disabled loadConfig or telConfig is inert, so the file may be
	// missing without failing the parse
	d, err := New([]string{"-loadConfig nowhere", "-telConfig nothing.xml"})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.ConfigOrder()) != 0 {
		t.Errorf("ConfigOrder = %v", d.ConfigOrder())
	}
}

func TestSetInputFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantFile string
		wantDir  string
	}{
		{name: "nested", path: "a/b/UFTI_x.exec", wantFile: "UFTI_x.exec", wantDir: "a/b"},
		{name: "bare", path: "UFTI_x.exec", wantFile: "UFTI_x.exec", wantDir: "."},
		{name: "empty", path: "", wantFile: "", wantDir: "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New([]string{})
			if err != nil {
				t.Fatal(err)
			}
			d.SetInputFile(tt.path)
			if d.InputFile() != tt.wantFile || d.InputDir() != tt.wantDir {
				t.Errorf("InputFile, InputDir = %q, %q, want %q, %q",
					d.InputFile(), d.InputDir(), tt.wantFile, tt.wantDir)
			}
		})
	}
}

func TestSetLines(t *testing.T) {
	d, err := New([]string{"startGroup"})
	if err != nil {
		t.Fatal(err)
	}
	d.SetLines([]string{"startGroup", "startObs"})
	if len(d.Lines()) != 2 {
		t.Errorf("Lines = %v", d.Lines())
	}
	if d.Modified() {
		t.Error("Modified = true; only header edits set it")
	}
}

func TestFixupVerify(t *testing.T) {
	d, err := New([]string{"startGroup"})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Fixup(); err != nil {
		t.Errorf("Fixup = %v", err)
	}
	if err := d.Verify(); err != nil {
		t.Errorf("Verify = %v", err)
	}
}
