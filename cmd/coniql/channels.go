package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/artpar/coniql/pkg/formatter"
	"github.com/spf13/cobra"
)

var (
	channelTimeout time.Duration
	watchCount     int
)

var getCmd = &cobra.Command{
	Use:   "get ID...",
	Short: "Read channels once",
	Long: `Read one or more channels and print their current values.

Channel ids take the form transport://name, transport:name, or a bare name
that resolves against the default transport.

Examples:
  coniql get 'ssim://sine(-1, 1, 4)'
  coniql get ca://BL01:TEMP ca://BL01:PRESSURE -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

var putCmd = &cobra.Command{
	Use:   "put ID=VALUE...",
	Short: "Write channels in one batch",
	Long: `Write values to channels and print what they read back.

All channels in one invocation must belong to the same transport. Values
use the mutation wire format: a scalar, a JSON array, or a base64 typed
array object.

Examples:
  coniql put ssim://reg=4.5
  coniql put 'ssim://a=[1, 2, 3]' ssim://b=hello`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPut,
}

var watchCmd = &cobra.Command{
	Use:   "watch ID",
	Short: "Print channel updates until interrupted",
	Long: `Subscribe to a channel and print each update.

Examples:
  coniql watch 'ssim://sine(-1, 1, 4, 0.5)'
  coniql watch ca://BL01:TEMP --count 10 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	for _, cmd := range []*cobra.Command{getCmd, putCmd, watchCmd} {
		rootCmd.AddCommand(cmd)
		addOutputFlags(cmd)
	}
	getCmd.Flags().DurationVarP(&channelTimeout, "timeout", "t", 0, "per-channel timeout (default from config)")
	putCmd.Flags().DurationVarP(&channelTimeout, "timeout", "t", 0, "write timeout (default from config)")
	watchCmd.Flags().IntVarP(&watchCount, "count", "n", 0, "stop after this many updates (0 = until interrupted)")
}

func runGet(cmd *cobra.Command, args []string) error {
	f, err := formatter.Lookup(outputFormat)
	if err != nil {
		return err
	}
	app, err := newOneShotApp(cmd)
	if err != nil {
		return err
	}
	defer app.Shutdown()

	ctx := cmd.Context()
	records := make([]map[string]any, 0, len(args))
	for _, id := range args {
		cell, err := app.Channels.GetChannel(ctx, id, channelTimeout)
		if err != nil {
			return fmt.Errorf("get %s: %w", id, err)
		}
		snap, err := cell.Channel(ctx)
		if err != nil {
			return fmt.Errorf("get %s: %w", id, err)
		}
		records = append(records, channelRecord(id, snap))
	}
	return f.FormatList(cmd.OutOrStdout(), channelKind, records, outputOptions())
}

func runPut(cmd *cobra.Command, args []string) error {
	f, err := formatter.Lookup(outputFormat)
	if err != nil {
		return err
	}
	ids, values, err := splitAssignments(args)
	if err != nil {
		return err
	}
	app, err := newOneShotApp(cmd)
	if err != nil {
		return err
	}
	defer app.Shutdown()

	ctx := cmd.Context()
	cells, err := app.Channels.PutChannels(ctx, ids, values, channelTimeout)
	if err != nil {
		return err
	}
	records := make([]map[string]any, 0, len(cells))
	for i, cell := range cells {
		snap, err := cell.Channel(ctx)
		if err != nil {
			return fmt.Errorf("read back %s: %w", ids[i], err)
		}
		records = append(records, channelRecord(ids[i], snap))
	}
	return f.FormatList(cmd.OutOrStdout(), channelKind, records, outputOptions())
}

func runWatch(cmd *cobra.Command, args []string) error {
	f, err := formatter.Lookup(outputFormat)
	if err != nil {
		return err
	}
	app, err := newOneShotApp(cmd)
	if err != nil {
		return err
	}
	defer app.Shutdown()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	id := args[0]
	sub, err := app.Channels.SubscribeChannel(ctx, id)
	if err != nil {
		return fmt.Errorf("watch %s: %w", id, err)
	}
	defer sub.Close()

	opts := outputOptions()
	for n := 0; watchCount == 0 || n < watchCount; n++ {
		cell, err := sub.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("watch %s: %w", id, err)
		}
		snap, err := cell.Channel(ctx)
		if err != nil {
			return fmt.Errorf("watch %s: %w", id, err)
		}
		rows := []map[string]any{channelRecord(id, snap)}
		if err := f.FormatList(cmd.OutOrStdout(), channelKind, rows, opts); err != nil {
			return err
		}
		// One header is enough for a stream of single-row tables.
		opts.NoHeader = true
	}
	return nil
}

// splitAssignments parses ID=VALUE arguments. The id ends at the first '='.
func splitAssignments(args []string) (ids, values []string, err error) {
	for _, arg := range args {
		id, value, ok := strings.Cut(arg, "=")
		if !ok || id == "" {
			return nil, nil, fmt.Errorf("argument %q is not ID=VALUE", arg)
		}
		ids = append(ids, id)
		values = append(values, value)
	}
	return ids, values, nil
}
