package channel_test

import (
	"testing"

	"github.com/artpar/coniql/domain/channel"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		id            string
		wantTransport string
		wantName      string
	}{
		{"ca:PV1", "ca", "PV1"},
		{"ca://PV1", "ca", "PV1"},
		{"pva://BL01:MTR:X", "pva", "BL01:MTR:X"},
		{"ssim://sine(-1,1)", "ssim", "sine(-1,1)"},
		{"PV1", "", "PV1"},
		{"", "", ""},
		{":PV1", "", ":PV1"},
		{"BL01:MTR:X", "BL01", "MTR:X"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			addr := channel.ParseAddress(tt.id)
			if addr.Transport != tt.wantTransport {
				t.Errorf("Transport = %q, want %q", addr.Transport, tt.wantTransport)
			}
			if addr.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", addr.Name, tt.wantName)
			}
			if addr.Raw != tt.id {
				t.Errorf("Raw = %q, want %q", addr.Raw, tt.id)
			}
		})
	}
}

func TestAddress_String(t *testing.T) {
	if got := channel.ParseAddress("ca:PV1").String(); got != "ca://PV1" {
		t.Errorf("String() = %q, want ca://PV1", got)
	}
	if got := channel.ParseAddress("PV1").String(); got != "PV1" {
		t.Errorf("String() = %q, want PV1", got)
	}
}

func TestConfig_ReadName(t *testing.T) {
	tests := []struct {
		name    string
		cfg     channel.Config
		want    string
		wantErr bool
	}{
		{"read pv", channel.Config{Name: "x", ReadPV: "r", WritePV: "w"}, "r", false},
		{"falls back to write pv", channel.Config{Name: "x", WritePV: "w"}, "w", false},
		{"neither", channel.Config{Name: "x"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.ReadName()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadName() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ReadName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_WriteName(t *testing.T) {
	cfg := channel.Config{Name: "x", ReadPV: "r"}
	if !cfg.ReadOnly() {
		t.Error("config without write pv should be read-only")
	}
	_, err := cfg.WriteName()
	if channel.ErrorCode(err) != channel.CodeReadOnlyChannel {
		t.Errorf("WriteName() error code = %s, want %s", channel.ErrorCode(err), channel.CodeReadOnlyChannel)
	}
}

func TestConfig_ApplyDisplay(t *testing.T) {
	prec := 3
	cfg := channel.Config{Units: "mm", Precision: &prec, Description: "stage"}
	d := cfg.ApplyDisplay(channel.Display{Units: "counts", Precision: 1, Role: channel.RoleRead})

	if d.Units != "mm" || d.Precision != 3 || d.Description != "stage" {
		t.Errorf("ApplyDisplay() = %+v", d)
	}
	if d.Role != channel.RoleRead {
		t.Errorf("Role = %s, want untouched RO", d.Role)
	}
}
