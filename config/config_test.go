package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/artpar/coniql/config"
)

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "127.0.0.1"
  port: 9000
  read_timeout: 10s
logging:
  level: debug
  format: console
transports:
  default: ca
  dial_timeout: 2s
  sim:
    enabled: false
  ca:
    url: "ws://gateway:8080/pvws/pv"
devices:
  path: devices.yaml
journal:
  enabled: true
  dsn: /tmp/journal.db
  retention: 720h
query:
  default_timeout: 2.5s
graphql:
  max_concurrency: 8
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr = %s", cfg.Server.Addr())
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 60*time.Second {
		t.Errorf("WriteTimeout = %v, want default 60s", cfg.Server.WriteTimeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Transports.Default != "ca" || cfg.Transports.Sim.Enabled || cfg.Transports.DialTimeout != 2*time.Second {
		t.Errorf("Transports = %+v", cfg.Transports)
	}
	if got := cfg.Transports.Enabled(); len(got) != 1 || got[0] != "ca" {
		t.Errorf("Enabled = %v", got)
	}
	if !cfg.Journal.Enabled || cfg.Journal.Retention != 720*time.Hour {
		t.Errorf("Journal = %+v", cfg.Journal)
	}
	if cfg.Query.DefaultTimeout != 2500*time.Millisecond {
		t.Errorf("DefaultTimeout = %v", cfg.Query.DefaultTimeout)
	}
	if cfg.GraphQL.MaxConcurrency != 8 || cfg.GraphQL.KeepAlive != 15*time.Second || cfg.GraphQL.QueryCacheSize != 1000 {
		t.Errorf("GraphQL = %+v", cfg.GraphQL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := config.Default()
	want.Transports.Default = "ssim"
	if *cfg != want {
		t.Errorf("defaults =\n%+v\nwant\n%+v", *cfg, want)
	}
}

func TestLoad_DefaultTransportFollowsGateways(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"sim only", "transports: {}", "ssim"},
		{"ca configured", "transports: {ca: {url: 'ws://gw/pvws/pv'}}", "ca"},
		{"pva only", "transports: {pva: {url: 'wss://gw/pvws/pv'}}", "pva"},
		{"explicit", "transports: {default: ssim, ca: {url: 'ws://gw/pvws/pv'}}", "ssim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if cfg.Transports.Default != tt.want {
				t.Errorf("Default = %q, want %q", cfg.Transports.Default, tt.want)
			}
		})
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_GATEWAY", "ws://expanded:8080/pvws/pv")

	cfg, err := config.Parse([]byte(`transports: {ca: {url: "${TEST_GATEWAY}"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Transports.CA.URL != "ws://expanded:8080/pvws/pv" {
		t.Errorf("CA.URL = %s", cfg.Transports.CA.URL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad level", "logging: {level: loud}", "logging.level"},
		{"bad format", "logging: {format: xml}", "logging.format"},
		{"bad port", "server: {port: 70000}", "server.port"},
		{"http gateway", "transports: {ca: {url: 'http://gw'}}", "transports.ca.url"},
		{"no transports", "transports: {sim: {enabled: false}}", "no transports enabled"},
		{"default not enabled", "transports: {default: pva}", "transports.default"},
		{"negative timeout", "query: {default_timeout: -1s}", "query.default_timeout"},
		{"metrics path", "metrics: {path: metrics}", "metrics.path"},
		{"journal without dsn", "journal: {enabled: true, dsn: ''}", ""},
		{"yaml syntax", "server: [", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				// An empty DSN falls back to the default rather than failing.
				if err != nil || cfg.Journal.DSN != "coniql.db" {
					t.Errorf("cfg = %+v, err = %v", cfg, err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
logging:
  level: info
`)
	t.Setenv("CONIQL_SERVER_PORT", "9100")
	t.Setenv("CONIQL_LOG_LEVEL", "warn")
	t.Setenv("CONIQL_CA_URL", "ws://env-gw/pvws/pv")
	t.Setenv("CONIQL_SIM_ENABLED", "off")
	t.Setenv("CONIQL_JOURNAL_ENABLED", "yes")
	t.Setenv("CONIQL_QUERY_TIMEOUT", "750ms")
	t.Setenv("CONIQL_GRAPHQL_PLAYGROUND", "true")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %s, want warn", cfg.Logging.Level)
	}
	if cfg.Transports.CA.URL != "ws://env-gw/pvws/pv" || cfg.Transports.Sim.Enabled || cfg.Transports.Default != "ca" {
		t.Errorf("Transports = %+v", cfg.Transports)
	}
	if !cfg.Journal.Enabled {
		t.Error("journal not enabled from env")
	}
	if cfg.Query.DefaultTimeout != 750*time.Millisecond {
		t.Errorf("DefaultTimeout = %v", cfg.Query.DefaultTimeout)
	}
	if !cfg.GraphQL.Playground {
		t.Error("playground not enabled from env")
	}
}

func TestEnvOverrides_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CONIQL_SERVER_PORT", "eighty"},
		{"CONIQL_DIAL_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.LoadFromEnv()
			if err == nil || !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error = %v, want one naming %s", err, tt.key)
			}
		})
	}
}

func TestLoadWithFallback(t *testing.T) {
	path := writeConfig(t, "server: {port: 9300}")

	cfg, err := config.LoadWithFallback(path, true)
	if err != nil || cfg.Server.Port != 9300 {
		t.Errorf("existing file: cfg = %+v, err = %v", cfg, err)
	}

	missing := filepath.Join(t.TempDir(), "coniql.yaml")
	cfg, err = config.LoadWithFallback(missing, false)
	if err != nil || cfg.Server.Port != 8080 {
		t.Errorf("missing default file: cfg = %+v, err = %v", cfg, err)
	}

	if _, err := config.LoadWithFallback(missing, true); err == nil {
		t.Error("missing explicit file accepted")
	}
}

func TestParseBoolValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("CONIQL_METRICS_ENABLED", tt.value)
			cfg, err := config.LoadFromEnv()
			if err != nil {
				t.Fatal(err)
			}
			// An empty value leaves the default (enabled) in place.
			want := tt.want
			if tt.value == "" {
				want = true
			}
			if cfg.Metrics.Enabled != want {
				t.Errorf("Metrics.Enabled for %q = %v, want %v", tt.value, cfg.Metrics.Enabled, want)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coniql.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
