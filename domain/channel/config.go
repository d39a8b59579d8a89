package channel

import "fmt"

// Config describes how a channel maps onto transport PVs.
// A channel without WritePV is read-only.
type Config struct {
	Name    string
	ReadPV  string
	WritePV string

	// Optional display hints, merged over what the transport reports.
	Description  string
	Units        string
	Precision    *int
	Widget       Widget
	Role         Role
	Form         DisplayForm
	DisplayRange *Range
}

// ReadOnly reports whether the channel has no write path.
func (c Config) ReadOnly() bool {
	return c.WritePV == ""
}

// ReadName returns the PV to read from, falling back to the write PV.
func (c Config) ReadName() (string, error) {
	if c.ReadPV != "" {
		return c.ReadPV, nil
	}
	if c.WritePV != "" {
		return c.WritePV, nil
	}
	return "", fmt.Errorf("%w: %q has neither read_pv nor write_pv", ErrUnknownChannel, c.Name)
}

// WriteName returns the PV to write to.
func (c Config) WriteName() (string, error) {
	if c.WritePV == "" {
		return "", fmt.Errorf("%w: %q", ErrReadOnlyChannel, c.Name)
	}
	return c.WritePV, nil
}

// ApplyDisplay overlays the configured display hints on d and returns the
// result. Zero-valued hints leave d unchanged.
func (c Config) ApplyDisplay(d Display) Display {
	if c.Description != "" {
		d.Description = c.Description
	}
	if c.Units != "" {
		d.Units = c.Units
	}
	if c.Precision != nil {
		d.Precision = *c.Precision
	}
	if c.Widget != "" {
		d.Widget = c.Widget
	}
	if c.Role != "" {
		d.Role = c.Role
	}
	if c.Form != "" {
		d.Form = c.Form
	}
	if c.DisplayRange != nil {
		r := *c.DisplayRange
		d.DisplayRange = &r
	}
	return d
}
