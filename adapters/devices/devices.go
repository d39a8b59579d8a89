// Package devices loads the channel table that maps friendly channel names
// onto transport PVs.
package devices

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/artpar/coniql/domain/channel"
	"gopkg.in/yaml.v3"
)

// File is the root structure of a devices YAML file.
type File struct {
	Channels []Entry `yaml:"channels"`
}

// Entry configures one channel.
type Entry struct {
	Transport    string     `yaml:"transport"`
	Name         string     `yaml:"name"`
	ReadPV       string     `yaml:"read_pv"`
	WritePV      string     `yaml:"write_pv"`
	Description  string     `yaml:"description"`
	Units        string     `yaml:"units"`
	Precision    *int       `yaml:"precision"`
	Widget       string     `yaml:"widget"`
	Role         string     `yaml:"role"`
	Form         string     `yaml:"form"`
	DisplayRange *RangeYAML `yaml:"display_range"`
}

// RangeYAML is a min/max pair in YAML.
type RangeYAML struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Table is an immutable lookup of channel configs by transport and name.
// A nil *Table is empty.
type Table struct {
	entries map[key]channel.Config
}

type key struct {
	transport string
	name      string
}

// Load reads a devices file. Environment variables in the file are expanded.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read devices: %w", err)
	}
	t, err := Parse([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse builds a table from YAML.
func Parse(data []byte) (*Table, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse devices: %w", err)
	}
	return New(f.Channels)
}

// New builds a table from entries, validating each one.
func New(entries []Entry) (*Table, error) {
	t := &Table{entries: make(map[key]channel.Config, len(entries))}
	for i, e := range entries {
		cfg, err := e.config()
		if err != nil {
			return nil, fmt.Errorf("channels[%d]: %w", i, err)
		}
		k := key{transport: e.Transport, name: e.Name}
		if _, dup := t.entries[k]; dup {
			return nil, fmt.Errorf("channels[%d]: duplicate channel %s://%s", i, e.Transport, e.Name)
		}
		t.entries[k] = cfg
	}
	return t, nil
}

// Lookup returns the configured channel for transport and name.
func (t *Table) Lookup(transport, name string) (channel.Config, bool) {
	if t == nil {
		return channel.Config{}, false
	}
	cfg, ok := t.entries[key{transport: transport, name: name}]
	return cfg, ok
}

// Len returns the number of configured channels.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns the configured channel names for transport, sorted.
func (t *Table) Names(transport string) []string {
	if t == nil {
		return nil
	}
	var names []string
	for k := range t.entries {
		if k.transport == transport {
			names = append(names, k.name)
		}
	}
	sort.Strings(names)
	return names
}

func (e Entry) config() (channel.Config, error) {
	if e.Transport == "" {
		return channel.Config{}, fmt.Errorf("transport is required")
	}
	if e.Name == "" {
		return channel.Config{}, fmt.Errorf("name is required")
	}
	if e.ReadPV == "" && e.WritePV == "" {
		return channel.Config{}, fmt.Errorf("%s: read_pv or write_pv is required", e.Name)
	}

	cfg := channel.Config{
		Name:        e.Name,
		ReadPV:      e.ReadPV,
		WritePV:     e.WritePV,
		Description: e.Description,
		Units:       e.Units,
		Precision:   e.Precision,
	}

	var err error
	if cfg.Widget, err = oneOf(e.Widget, "widget", widgets); err != nil {
		return channel.Config{}, err
	}
	if cfg.Role, err = oneOf(e.Role, "role", roles); err != nil {
		return channel.Config{}, err
	}
	if cfg.Form, err = oneOf(e.Form, "form", forms); err != nil {
		return channel.Config{}, err
	}
	if e.DisplayRange != nil {
		if e.DisplayRange.Min > e.DisplayRange.Max {
			return channel.Config{}, fmt.Errorf("%s: display_range min > max", e.Name)
		}
		cfg.DisplayRange = &channel.Range{Min: e.DisplayRange.Min, Max: e.DisplayRange.Max}
	}
	return cfg, nil
}

var (
	widgets = []channel.Widget{
		channel.WidgetTextInput, channel.WidgetTextUpdate, channel.WidgetPlot, channel.WidgetLED,
		channel.WidgetComboBox, channel.WidgetCheckBox, channel.WidgetTable, channel.WidgetImage,
		channel.WidgetProgressBar,
	}
	roles = []channel.Role{channel.RoleRead, channel.RoleWrite, channel.RoleReadWrite}
	forms = []channel.DisplayForm{
		channel.FormDefault, channel.FormString, channel.FormBinary, channel.FormDecimal,
		channel.FormHex, channel.FormExponential, channel.FormEngineering,
	}
)

func oneOf[T ~string](v, field string, allowed []T) (T, error) {
	if v == "" {
		return "", nil
	}
	up := T(strings.ToUpper(strings.TrimSpace(v)))
	for _, a := range allowed {
		if a == up {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown %s %q", field, v)
}
