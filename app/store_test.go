package app_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/artpar/coniql/app"
	"github.com/artpar/coniql/domain/channel"
)

func newTestStore(t *testing.T) (*app.Store, *fakePlugin, *fakePlugin) {
	t.Helper()
	ca := newFakePlugin("ca")
	sim := newFakePlugin("ssim")

	s := app.NewStore()
	if err := s.Register("ssim", sim, false); err != nil {
		t.Fatalf("register ssim: %v", err)
	}
	if err := s.Register("ca", ca, true); err != nil {
		t.Fatalf("register ca: %v", err)
	}
	s.Freeze()
	return s, ca, sim
}

func TestStore_Resolve(t *testing.T) {
	s, ca, sim := newTestStore(t)

	tests := []struct {
		id            string
		wantTransport string
		wantName      string
		wantPlugin    *fakePlugin
	}{
		{"ca:PV1", "ca", "PV1", ca},
		{"ca://PV1", "ca", "PV1", ca},
		{"PV1", "ca", "PV1", ca},
		{"ssim://sine", "ssim", "sine", sim},
		{"ssim:sine", "ssim", "sine", sim},
		{"BL01:MTR:X", "ca", "BL01:MTR:X", ca},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := s.Resolve(tt.id)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.id, err)
			}
			if r.Transport != tt.wantTransport || r.Name != tt.wantName {
				t.Errorf("Resolve(%q) = (%s, %s), want (%s, %s)",
					tt.id, r.Transport, r.Name, tt.wantTransport, tt.wantName)
			}
			if r.Plugin != tt.wantPlugin {
				t.Errorf("Resolve(%q) picked the wrong plugin", tt.id)
			}
			if r.Config.Name != tt.wantName {
				t.Errorf("Config.Name = %q, want %q", r.Config.Name, tt.wantName)
			}
			if r.ID != tt.id {
				t.Errorf("ID = %q, want %q", r.ID, tt.id)
			}
		})
	}
}

func TestStore_Resolve_UnknownTransport(t *testing.T) {
	s := app.NewStore()
	if err := s.Register("ssim", newFakePlugin("ssim"), false); err != nil {
		t.Fatal(err)
	}

	for _, id := range []string{"pva://X", "PV1"} {
		if _, err := s.Resolve(id); !errors.Is(err, channel.ErrUnknownTransport) {
			t.Errorf("Resolve(%q) error = %v, want ErrUnknownTransport", id, err)
		}
	}
}

type unknownPlugin struct{ *fakePlugin }

func (unknownPlugin) ChannelConfig(name string) (channel.Config, error) {
	return channel.Config{}, channel.ErrUnknownChannel
}

func TestStore_Resolve_UnknownChannel(t *testing.T) {
	s := app.NewStore()
	_ = s.Register("ssim", unknownPlugin{newFakePlugin("ssim")}, true)

	if _, err := s.Resolve("ssim://nope(1"); !errors.Is(err, channel.ErrUnknownChannel) {
		t.Errorf("error = %v, want ErrUnknownChannel", err)
	}
}

func TestStore_Register(t *testing.T) {
	s := app.NewStore()
	p := newFakePlugin("ca")

	if err := s.Register("", p, false); err == nil {
		t.Error("empty transport should be rejected")
	}
	if err := s.Register("ca", nil, false); err == nil {
		t.Error("nil plugin should be rejected")
	}
	if err := s.Register("ca", p, false); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := s.Register("ca", p, false); err == nil {
		t.Error("duplicate transport should be rejected")
	}

	s.Freeze()
	if err := s.Register("pva", newFakePlugin("pva"), false); err == nil {
		t.Error("register after Freeze should fail")
	}
}

func TestStore_LastDefaultWins(t *testing.T) {
	s := app.NewStore()
	_ = s.Register("ca", newFakePlugin("ca"), true)
	_ = s.Register("pva", newFakePlugin("pva"), true)
	_ = s.Register("ssim", newFakePlugin("ssim"), false)

	if got := s.Default(); got != "pva" {
		t.Errorf("Default() = %q, want pva", got)
	}
	if got := s.Transports(); !reflect.DeepEqual(got, []string{"ca", "pva", "ssim"}) {
		t.Errorf("Transports() = %v", got)
	}
}

func TestStore_StripTransport(t *testing.T) {
	s, _, _ := newTestStore(t)

	tests := []struct {
		pv            string
		wantTransport string
		wantName      string
	}{
		{"ca://BL01:MTR:X.RBV", "ca", "BL01:MTR:X.RBV"},
		{"ca:PV1", "ca", "PV1"},
		{"BL01:MTR:X", "", "BL01:MTR:X"},
		{"PV1", "", "PV1"},
	}
	for _, tt := range tests {
		tr, name := s.StripTransport(tt.pv)
		if tr != tt.wantTransport || name != tt.wantName {
			t.Errorf("StripTransport(%q) = (%q, %q), want (%q, %q)",
				tt.pv, tr, name, tt.wantTransport, tt.wantName)
		}
	}
}
