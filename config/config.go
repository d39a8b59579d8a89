// Package config provides configuration loading, validation and hot reload.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked for when none is given.
const DefaultPath = "coniql.yaml"

// Config is the root configuration structure.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Transports TransportsConfig `yaml:"transports"`
	Devices    DevicesConfig    `yaml:"devices"`
	Journal    JournalConfig    `yaml:"journal"`
	Query      QueryConfig      `yaml:"query"`
	GraphQL    GraphQLConfig    `yaml:"graphql"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"` // per request, websocket excluded
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// TransportsConfig selects the channel plugins to register.
type TransportsConfig struct {
	Default      string        `yaml:"default"` // transport for bare channel names
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	Sim          SimConfig     `yaml:"sim"`
	CA           GatewayConfig `yaml:"ca"`
	PVA          GatewayConfig `yaml:"pva"`
}

// SimConfig configures the simulated transport.
type SimConfig struct {
	Enabled bool `yaml:"enabled"`
}

// GatewayConfig points a protocol transport at a PV Web Socket gateway.
// An empty URL leaves the transport unregistered.
type GatewayConfig struct {
	URL string `yaml:"url"`
}

// DevicesConfig configures the optional device table.
type DevicesConfig struct {
	Path string `yaml:"path"`
}

// JournalConfig configures the write journal.
type JournalConfig struct {
	Enabled   bool          `yaml:"enabled"`
	DSN       string        `yaml:"dsn"`
	Retention time.Duration `yaml:"retention"` // 0 keeps everything
}

// QueryConfig configures channel reads and writes.
type QueryConfig struct {
	DefaultTimeout time.Duration `yaml:"default_timeout"`
}

// GraphQLConfig configures the GraphQL surfaces.
type GraphQLConfig struct {
	MaxConcurrency int           `yaml:"max_concurrency"` // 0 means unbounded
	InitTimeout    time.Duration `yaml:"init_timeout"`
	KeepAlive      time.Duration `yaml:"keep_alive"`
	QueryCacheSize int           `yaml:"query_cache_size"` // parsed documents kept for reuse
	Playground     bool          `yaml:"playground"`       // serve the GraphQL IDE on /playground
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			RequestTimeout:  60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		Transports: TransportsConfig{
			DialTimeout:  10 * time.Second,
			WriteTimeout: 5 * time.Second,
			Sim:          SimConfig{Enabled: true},
		},
		Journal: JournalConfig{DSN: "coniql.db"},
		Query:   QueryConfig{DefaultTimeout: 5 * time.Second},
		GraphQL: GraphQLConfig{
			InitTimeout:    10 * time.Second,
			KeepAlive:      15 * time.Second,
			QueryCacheSize: 1000,
		},
	}
}

// Load reads configuration from a YAML file. Values not in the file keep
// their defaults; CONIQL_* environment variables override both.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a configuration from YAML. ${VAR} references are expanded
// from the environment before parsing.
func Parse(data []byte) (*Config, error) {
	data = []byte(os.ExpandEnv(string(data)))

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finish(&cfg)
}

// LoadFromEnv creates configuration from defaults and environment variables.
//
// Environment variables:
//
//	CONIQL_SERVER_HOST, CONIQL_SERVER_PORT
//	CONIQL_SERVER_READ_TIMEOUT, CONIQL_SERVER_WRITE_TIMEOUT
//	CONIQL_LOG_LEVEL, CONIQL_LOG_FORMAT
//	CONIQL_METRICS_ENABLED, CONIQL_METRICS_PATH
//	CONIQL_DEFAULT_TRANSPORT, CONIQL_SIM_ENABLED
//	CONIQL_CA_URL, CONIQL_PVA_URL, CONIQL_DIAL_TIMEOUT
//	CONIQL_DEVICES_PATH
//	CONIQL_JOURNAL_ENABLED, CONIQL_JOURNAL_DSN
//	CONIQL_QUERY_TIMEOUT
//	CONIQL_GRAPHQL_PLAYGROUND
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	return finish(&cfg)
}

// LoadWithFallback loads path when it exists and falls back to defaults
// and environment variables otherwise. A path that was asked for
// explicitly must exist.
func LoadWithFallback(path string, explicit bool) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		} else if explicit {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return LoadFromEnv()
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	setDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies CONIQL_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) error {
	var errs []error
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			*dst = parseBool(v)
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v := os.Getenv(key); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}

	str("CONIQL_SERVER_HOST", &cfg.Server.Host)
	if v := os.Getenv("CONIQL_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("CONIQL_SERVER_PORT: %w", err))
		} else {
			cfg.Server.Port = port
		}
	}
	duration("CONIQL_SERVER_READ_TIMEOUT", &cfg.Server.ReadTimeout)
	duration("CONIQL_SERVER_WRITE_TIMEOUT", &cfg.Server.WriteTimeout)

	str("CONIQL_LOG_LEVEL", &cfg.Logging.Level)
	str("CONIQL_LOG_FORMAT", &cfg.Logging.Format)

	boolean("CONIQL_METRICS_ENABLED", &cfg.Metrics.Enabled)
	str("CONIQL_METRICS_PATH", &cfg.Metrics.Path)

	str("CONIQL_DEFAULT_TRANSPORT", &cfg.Transports.Default)
	boolean("CONIQL_SIM_ENABLED", &cfg.Transports.Sim.Enabled)
	str("CONIQL_CA_URL", &cfg.Transports.CA.URL)
	str("CONIQL_PVA_URL", &cfg.Transports.PVA.URL)
	duration("CONIQL_DIAL_TIMEOUT", &cfg.Transports.DialTimeout)

	str("CONIQL_DEVICES_PATH", &cfg.Devices.Path)

	boolean("CONIQL_JOURNAL_ENABLED", &cfg.Journal.Enabled)
	str("CONIQL_JOURNAL_DSN", &cfg.Journal.DSN)

	duration("CONIQL_QUERY_TIMEOUT", &cfg.Query.DefaultTimeout)

	boolean("CONIQL_GRAPHQL_PLAYGROUND", &cfg.GraphQL.Playground)

	return errors.Join(errs...)
}

// parseBool parses a boolean from common string values.
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	def := Default()

	if cfg.Server.Host == "" {
		cfg.Server.Host = def.Server.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = def.Metrics.Path
	}
	if cfg.Query.DefaultTimeout == 0 {
		cfg.Query.DefaultTimeout = def.Query.DefaultTimeout
	}
	if cfg.Journal.DSN == "" {
		cfg.Journal.DSN = def.Journal.DSN
	}

	// Bare names go to the first configured gateway, then the simulator.
	if cfg.Transports.Default == "" {
		switch {
		case cfg.Transports.CA.URL != "":
			cfg.Transports.Default = "ca"
		case cfg.Transports.PVA.URL != "":
			cfg.Transports.Default = "pva"
		case cfg.Transports.Sim.Enabled:
			cfg.Transports.Default = "ssim"
		}
	}
}

// Enabled returns the transports the configuration registers.
func (t TransportsConfig) Enabled() []string {
	var out []string
	if t.Sim.Enabled {
		out = append(out, "ssim")
	}
	if t.CA.URL != "" {
		out = append(out, "ca")
	}
	if t.PVA.URL != "" {
		out = append(out, "pva")
	}
	return out
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535, got %d", cfg.Server.Port)
	}

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}
	if !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/', got %q", cfg.Metrics.Path)
	}

	for name, gw := range map[string]GatewayConfig{"ca": cfg.Transports.CA, "pva": cfg.Transports.PVA} {
		if gw.URL == "" {
			continue
		}
		u, err := url.Parse(gw.URL)
		if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
			return fmt.Errorf("transports.%s.url must be a ws:// or wss:// URL, got %q", name, gw.URL)
		}
	}

	enabled := cfg.Transports.Enabled()
	if len(enabled) == 0 {
		return errors.New("no transports enabled: enable transports.sim or set transports.ca.url / transports.pva.url")
	}
	found := false
	for _, t := range enabled {
		if t == cfg.Transports.Default {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("transports.default %q is not enabled (enabled: %s)",
			cfg.Transports.Default, strings.Join(enabled, ", "))
	}

	if cfg.Query.DefaultTimeout < 0 {
		return fmt.Errorf("query.default_timeout must not be negative")
	}
	if cfg.GraphQL.MaxConcurrency < 0 {
		return fmt.Errorf("graphql.max_concurrency must not be negative")
	}
	if cfg.GraphQL.QueryCacheSize < 0 {
		return fmt.Errorf("graphql.query_cache_size must not be negative")
	}
	if cfg.Journal.Enabled && cfg.Journal.DSN == "" {
		return fmt.Errorf("journal.dsn is required when the journal is enabled")
	}
	return nil
}
