package sequence

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ukirt-ocs/sequence-format/go-sequence/config"
	"github.com/ukirt-ocs/sequence-format/go-sequence/instr"
	"github.com/ukirt-ocs/sequence-format/go-sequence/waveband"
)

func cfgOf(t *testing.T, lines ...string) *config.Document {
	t.Helper()
	c, err := config.FromLines(lines, config.ORACFormat)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestInstrumentPrecedence(t *testing.T) {
	// an explicit set_inst beats everything
	d := mustNew(t, []string{"set_inst ufti"})
	d.AddConfig("a", cfgOf(t, "instrument = CGS4"))
	if got := d.Instrument(); got != instr.UFTI {
		t.Errorf("Instrument = %s, want UFTI", got)
	}

	// a disabled set_inst still names the instrument
	d = mustNew(t, []string{"-set_inst uist"})
	if got := d.Instrument(); got != instr.UIST {
		t.Errorf("Instrument = %s, want UIST", got)
	}

	// then the first config with an instrument item
	d = mustNew(t, []string{"startGroup"})
	d.AddConfig("a", cfgOf(t, "camera = imaging"))
	d.AddConfig("b", cfgOf(t, "instrument = cgs4"))
	if got := d.Instrument(); got != instr.CGS4 {
		t.Errorf("Instrument = %s, want CGS4", got)
	}

	// then the input file name before the first underscore
	d = mustNew(t, []string{"startGroup"}, WithInputFile("wfcam_flat.exec"))
	if got := d.Instrument(); got != instr.WFCAM {
		t.Errorf("Instrument = %s, want WFCAM", got)
	}

	// a file name without an underscore names nothing
	d = mustNew(t, []string{"startGroup"}, WithInputFile("observe.exec"))
	if got := d.Instrument(); got != instr.Unknown {
		t.Errorf("Instrument = %s, want UNKNOWN", got)
	}
}

func TestConfigItemSlots(t *testing.T) {
	d := mustNew(t, []string{"startGroup"})
	d.AddConfig("a", cfgOf(t, "filter = J98"))
	d.AddConfig("b", cfgOf(t, "camera = imaging"))
	d.AddConfig("c", cfgOf(t, "filter = K98"))
	want := []ConfigValue{
		{Config: "a", Value: "J98", OK: true},
		{Config: "b"},
		{Config: "c", Value: "K98", OK: true},
	}
	if diff := cmp.Diff(want, d.ConfigItem("filter")); diff != "" {
		t.Errorf("ConfigItem mismatch (-want +got):\n%s", diff)
	}
}

func TestCollapse(t *testing.T) {
	in := []ConfigValue{
		{Value: "A", OK: true},
		{Value: "A", OK: true},
		{OK: false},
		{Value: "B", OK: true},
		{Value: "A", OK: true},
	}
	// undefined slots drop, only back-to-back repeats fold
	if diff := cmp.Diff([]string{"A", "B", "A"}, collapse(in)); diff != "" {
		t.Errorf("collapse mismatch (-want +got):\n%s", diff)
	}
}

func TestCameraModes(t *testing.T) {
	d := mustNew(t, []string{"set_inst UFTI"})
	modes, err := d.CameraModes()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"imaging"}, modes); diff != "" {
		t.Errorf("UFTI modes mismatch (-want +got):\n%s", diff)
	}

	d = mustNew(t, []string{"set_inst CGS4"})
	modes, err = d.CameraModes()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"spectroscopy"}, modes); diff != "" {
		t.Errorf("CGS4 modes mismatch (-want +got):\n%s", diff)
	}

	d = mustNew(t, []string{"set_inst michelle"})
	d.AddConfig("a", cfgOf(t, "camera = imaging"))
	d.AddConfig("b", cfgOf(t, "camera = imaging"))
	d.AddConfig("c", cfgOf(t, "camera = spectroscopy"))
	d.AddConfig("d", cfgOf(t, "filter = N"))
	modes, err = d.CameraModes()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"imaging", "spectroscopy"}, modes); diff != "" {
		t.Errorf("Michelle modes mismatch (-want +got):\n%s", diff)
	}

	d = mustNew(t, []string{"startGroup"})
	if _, err := d.CameraModes(); !errors.Is(err, ErrUnknownInstrument) {
		t.Errorf("CameraModes err = %v, want ErrUnknownInstrument", err)
	}
}

func TestWaveBands(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		configs  [][]string
		want     []waveband.WaveBand
		wantJoin string
		wantErr  error
	}{
		{
			name:  "ufti filters",
			lines: []string{"set_inst UFTI"},
			configs: [][]string{
				{"filter = J98"},
				{"filter = J98"},
				{"filter = K98"},
			},
			want: []waveband.WaveBand{
				waveband.New("UFTI", waveband.Filter, "J98"),
				waveband.New("UFTI", waveband.Filter, "K98"),
			},
			wantJoin: "J98/K98",
		},
		{
			name:  "ufti capitalized spelling",
			lines: []string{"set_inst UFTI"},
			configs: [][]string{
				{"Filter = H98"},
			},
			want: []waveband.WaveBand{
				waveband.New("UFTI", waveband.Filter, "H98"),
			},
			wantJoin: "H98",
		},
		{
			name:  "cgs4 wavelengths",
			lines: []string{"set_inst CGS4"},
			configs: [][]string{
				{"wavelength = 2.2"},
				{"grating = 40lpmm"},
			},
			want: []waveband.WaveBand{
				waveband.New("CGS4", waveband.Wavelength, "2.2"),
			},
			wantJoin: "2.2",
		},
		{
			name:  "uist spectroscopy reads wavelengths",
			lines: []string{"set_inst UIST"},
			configs: [][]string{
				{"camera = spectroscopy", "centralWavelength = 10.5"},
				{"centralWavelength = 11.2"},
			},
			want: []waveband.WaveBand{
				waveband.New("UIST", waveband.Wavelength, "10.5"),
				waveband.New("UIST", waveband.Wavelength, "11.2"),
			},
			wantJoin: "10.5/11.2",
		},
		{
			name:  "uist imaging reads filters",
			lines: []string{"set_inst UIST"},
			configs: [][]string{
				{"camera = imaging", "filter = K98"},
			},
			want: []waveband.WaveBand{
				waveband.New("UIST", waveband.Filter, "K98"),
			},
			wantJoin: "K98",
		},
		{
			name:  "uist without camera is ambiguous",
			lines: []string{"set_inst UIST"},
			configs: [][]string{
				{"filter = K98"},
			},
			wantErr: ErrAmbiguousMode,
		},
		{
			name:    "unknown instrument",
			lines:   []string{"startGroup"},
			wantErr: ErrUnknownInstrument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustNew(t, tt.lines)
			for i, lines := range tt.configs {
				d.AddConfig(string(rune('a'+i)), cfgOf(t, lines...))
			}
			got, err := d.WaveBands()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("WaveBands err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("WaveBands mismatch (-want +got):\n%s", diff)
			}
			join, err := d.WaveBandString()
			if err != nil {
				t.Fatal(err)
			}
			if join != tt.wantJoin {
				t.Errorf("WaveBandString = %q, want %q", join, tt.wantJoin)
			}
		})
	}
}
