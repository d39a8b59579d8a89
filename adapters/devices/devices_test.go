package devices_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/artpar/coniql/adapters/devices"
	"github.com/artpar/coniql/domain/channel"
)

const sample = `
channels:
  - transport: ca
    name: BL01:MOTOR
    read_pv: ca://BL01:MTR:X.RBV
    write_pv: BL01:MTR:X
    description: Sample stage X
    units: mm
    precision: 3
    widget: textinput
    display_range: {min: -10, max: 10}
  - transport: ssim
    name: wave
    read_pv: ssim://sinewave(2, 10, 100)
`

func TestParse(t *testing.T) {
	table, err := devices.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	cfg, ok := table.Lookup("ca", "BL01:MOTOR")
	if !ok {
		t.Fatal("BL01:MOTOR not found")
	}
	if cfg.ReadPV != "ca://BL01:MTR:X.RBV" || cfg.WritePV != "BL01:MTR:X" {
		t.Errorf("pvs = %q / %q", cfg.ReadPV, cfg.WritePV)
	}
	if cfg.Precision == nil || *cfg.Precision != 3 {
		t.Errorf("precision = %v, want 3", cfg.Precision)
	}
	if cfg.Widget != channel.WidgetTextInput {
		t.Errorf("widget = %q, want TEXTINPUT", cfg.Widget)
	}
	if cfg.DisplayRange == nil || cfg.DisplayRange.Min != -10 || cfg.DisplayRange.Max != 10 {
		t.Errorf("display range = %+v", cfg.DisplayRange)
	}

	wave, _ := table.Lookup("ssim", "wave")
	if !wave.ReadOnly() {
		t.Error("wave should be read-only")
	}

	if _, ok := table.Lookup("pva", "BL01:MOTOR"); ok {
		t.Error("lookup should be keyed by transport")
	}
	if got := table.Names("ca"); !reflect.DeepEqual(got, []string{"BL01:MOTOR"}) {
		t.Errorf("Names(ca) = %v", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"no transport", "channels: [{name: a, read_pv: a}]", "transport is required"},
		{"no name", "channels: [{transport: ca, read_pv: a}]", "name is required"},
		{"no pvs", "channels: [{transport: ca, name: a}]", "read_pv or write_pv"},
		{"bad widget", "channels: [{transport: ca, name: a, read_pv: a, widget: dial}]", "unknown widget"},
		{"bad range", "channels: [{transport: ca, name: a, read_pv: a, display_range: {min: 2, max: 1}}]", "min > max"},
		{"duplicate", "channels: [{transport: ca, name: a, read_pv: a}, {transport: ca, name: a, read_pv: b}]", "duplicate"},
		{"bad yaml", "channels: [", "parse devices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := devices.Parse([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("BEAMLINE", "BL07")
	path := filepath.Join(t.TempDir(), "devices.yaml")
	data := "channels:\n  - transport: ca\n    name: M\n    read_pv: ${BEAMLINE}:MTR\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := devices.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	cfg, _ := table.Lookup("ca", "M")
	if cfg.ReadPV != "BL07:MTR" {
		t.Errorf("ReadPV = %q, want BL07:MTR", cfg.ReadPV)
	}

	if _, err := devices.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNilTable(t *testing.T) {
	var table *devices.Table
	if _, ok := table.Lookup("ca", "x"); ok {
		t.Error("nil table should be empty")
	}
	if table.Len() != 0 || table.Names("ca") != nil {
		t.Error("nil table should be empty")
	}
}
