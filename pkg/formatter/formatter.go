// Package formatter renders CLI output as a table, JSON or YAML.
// Records are flat maps; a Kind names them and fixes the column order.
package formatter

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Kind describes a type of record.
type Kind struct {
	Name    string   // e.g. "channel", "write"
	Columns []string // default column order; empty means all keys, sorted
}

// Formatter converts records to a specific output format.
type Formatter interface {
	// Name returns the formatter name (e.g., "table", "json", "yaml").
	Name() string

	// FormatList formats a list of records.
	FormatList(w io.Writer, kind Kind, records []map[string]any, opts FormatOptions) error

	// FormatRecord formats a single record.
	FormatRecord(w io.Writer, kind Kind, record map[string]any, opts FormatOptions) error

	// FormatError formats an error.
	FormatError(w io.Writer, err error) error
}

// FormatOptions configures formatting behavior.
type FormatOptions struct {
	// Columns overrides the kind's columns.
	Columns []string

	// NoHeader disables the header row for tables.
	NoHeader bool

	// Compact minimizes whitespace in JSON.
	Compact bool

	// MaxWidth truncates long table cells (0 = no limit).
	MaxWidth int
}

// Registry manages registered formatters.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
	defaultFmt string
}

// NewRegistry creates an empty registry defaulting to "table".
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
		defaultFmt: "table",
	}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Name()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Name())
	}
	r.formatters[f.Name()] = f
	return nil
}

// Get returns a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[name]
	return f, ok
}

// Lookup returns the named formatter, or the default for an empty name.
func (r *Registry) Lookup(name string) (Formatter, error) {
	if name == "" {
		r.mu.RLock()
		name = r.defaultFmt
		r.mu.RUnlock()
	}
	f, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (have %v)", name, r.List())
	}
	return f, nil
}

// SetDefault sets the default formatter.
func (r *Registry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[name]; !exists {
		return fmt.Errorf("formatter %q not registered", name)
	}
	r.defaultFmt = name
	return nil
}

// List returns all registered formatter names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry holds the table, json and yaml formatters.
var DefaultRegistry = NewRegistry()

// Lookup returns a formatter from the default registry.
func Lookup(name string) (Formatter, error) {
	return DefaultRegistry.Lookup(name)
}

// List returns all formatter names from the default registry.
func List() []string {
	return DefaultRegistry.List()
}

func init() {
	for _, f := range []Formatter{NewTableFormatter(), NewJSONFormatter(), NewYAMLFormatter()} {
		if err := DefaultRegistry.Register(f); err != nil {
			panic(err)
		}
	}
}

// columns picks the columns to show for records.
func columns(kind Kind, opts FormatOptions, records ...map[string]any) []string {
	if len(opts.Columns) > 0 {
		return opts.Columns
	}
	if len(kind.Columns) > 0 {
		return kind.Columns
	}
	seen := make(map[string]bool)
	var cols []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// project keeps only the requested columns. Without a column override the
// record is returned unchanged.
func project(record map[string]any, opts FormatOptions) map[string]any {
	if record == nil || len(opts.Columns) == 0 {
		return record
	}
	out := make(map[string]any, len(opts.Columns))
	for _, col := range opts.Columns {
		if v, ok := record[col]; ok {
			out[col] = v
		}
	}
	return out
}

func projectAll(records []map[string]any, opts FormatOptions) []map[string]any {
	out := make([]map[string]any, len(records))
	for i, rec := range records {
		out[i] = project(rec, opts)
	}
	return out
}
