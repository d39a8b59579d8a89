package main

import (
	"time"

	"github.com/artpar/coniql/domain/channel"
	"github.com/artpar/coniql/pkg/formatter"
	"github.com/artpar/coniql/ports"
	"github.com/spf13/cobra"
)

var (
	outputFormat string
	noHeader     bool
)

var (
	channelKind = formatter.Kind{
		Name:    "channel",
		Columns: []string{"id", "value", "units", "quality", "time"},
	}
	writeKind = formatter.Kind{
		Name:    "write",
		Columns: []string{"at", "transport", "pvs", "values", "outcome", "duration"},
	}
)

// addOutputFlags registers -o and --no-header on a command.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	cmd.Flags().BoolVar(&noHeader, "no-header", false, "omit the table header")
}

func outputOptions() formatter.FormatOptions {
	return formatter.FormatOptions{NoHeader: noHeader, MaxWidth: 60}
}

// channelRecord flattens a snapshot for display.
func channelRecord(id string, s *channel.Snapshot) map[string]any {
	rec := map[string]any{"id": id}
	if s == nil {
		return rec
	}
	if s.Value != nil {
		rec["value"] = s.Value.String(false)
	}
	if s.Time != nil {
		rec["time"] = s.Time.Datetime().UTC().Format(time.RFC3339Nano)
	}
	if s.Status != nil {
		rec["quality"] = string(s.Status.Quality)
		rec["mutable"] = s.Status.Mutable
		if s.Status.Message != "" {
			rec["message"] = s.Status.Message
		}
	}
	if s.Display != nil {
		if s.Display.Units != "" {
			rec["units"] = s.Display.Units
		}
		if s.Display.Description != "" {
			rec["description"] = s.Display.Description
		}
	}
	return rec
}

func writeRecord(e ports.WriteEntry) map[string]any {
	rec := map[string]any{
		"id":        e.ID,
		"at":        e.At.UTC().Format(time.RFC3339),
		"transport": e.Transport,
		"pvs":       e.PVs,
		"values":    e.Values,
		"outcome":   e.Outcome,
		"duration":  e.Duration.String(),
	}
	if e.Error != "" {
		rec["error"] = e.Error
	}
	return rec
}
