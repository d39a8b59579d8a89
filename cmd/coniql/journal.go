package main

import (
	"fmt"

	"github.com/artpar/coniql/bootstrap"
	"github.com/artpar/coniql/pkg/formatter"
	"github.com/spf13/cobra"
)

var (
	journalTransport string
	journalLimit     int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "List recent batched writes",
	Long: `List the most recent entries of the write journal, newest first.

The journal must be enabled (journal.enabled or CONIQL_JOURNAL_ENABLED).

Examples:
  coniql journal
  coniql journal --transport ca --limit 100 -o json`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

func init() {
	rootCmd.AddCommand(journalCmd)
	addOutputFlags(journalCmd)

	journalCmd.Flags().StringVar(&journalTransport, "transport", "", "only show writes to this transport")
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum entries to show")
}

func runJournal(cmd *cobra.Command, args []string) error {
	f, err := formatter.Lookup(outputFormat)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.Journal.Enabled {
		return fmt.Errorf("the write journal is disabled")
	}

	ctx := cmd.Context()
	db, store, err := bootstrap.OpenJournal(ctx, cfg.Journal)
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := store.Recent(ctx, journalTransport, journalLimit)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}
	records := make([]map[string]any, len(entries))
	for i, e := range entries {
		records[i] = writeRecord(e)
	}
	return f.FormatList(cmd.OutOrStdout(), writeKind, records, outputOptions())
}
