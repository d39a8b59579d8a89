package main

import (
	"context"
	"fmt"
	"time"

	"github.com/artpar/coniql/adapters/devices"
	"github.com/artpar/coniql/adapters/sqlite"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration before deployment",
	Long: `Validate the coniql configuration.

Checks:
  - YAML syntax and values are valid
  - The device table loads, when one is configured
  - Gateways accept a websocket handshake (optional)
  - The journal database is writable (optional)

Examples:
  coniql validate
  coniql validate --config /etc/coniql/coniql.yaml --check-gateways`,
	RunE: runValidate,
}

var (
	validateCheckGateways bool
	validateCheckJournal  bool
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateCheckGateways, "check-gateways", false, "check that configured gateways are reachable")
	validateCmd.Flags().BoolVar(&validateCheckJournal, "check-journal", false, "check that the journal database is writable")
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, err := configPath(cmd)
	if err != nil {
		fmt.Fprintf(out, "  %s Config file exists\n", crossMark)
		return err
	}
	if path == "" {
		fmt.Fprintln(out, "Validating defaults and CONIQL_* environment...")
	} else {
		fmt.Fprintf(out, "Validating %s...\n", path)
	}
	fmt.Fprintln(out)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(out, "  %s Config valid\n", crossMark)
		return fmt.Errorf("config error: %w", err)
	}
	fmt.Fprintf(out, "  %s Config valid\n", checkMark)

	fmt.Fprintf(out, "  %s Listen: %s\n", checkMark, cfg.Server.Addr())
	fmt.Fprintf(out, "  %s Transports: %v (default %s)\n", checkMark, cfg.Transports.Enabled(), cfg.Transports.Default)

	if cfg.Devices.Path != "" {
		table, err := devices.Load(cfg.Devices.Path)
		if err != nil {
			fmt.Fprintf(out, "  %s Devices: %s\n", crossMark, cfg.Devices.Path)
			return fmt.Errorf("devices error: %w", err)
		}
		fmt.Fprintf(out, "  %s Devices: %d channels from %s\n", checkMark, table.Len(), cfg.Devices.Path)
	}

	if cfg.Journal.Enabled {
		fmt.Fprintf(out, "  %s Journal: %s\n", checkMark, cfg.Journal.DSN)
	}

	failed := false
	if validateCheckGateways {
		for name, url := range map[string]string{"ca": cfg.Transports.CA.URL, "pva": cfg.Transports.PVA.URL} {
			if url == "" {
				continue
			}
			if err := checkGatewayReachable(url, cfg.Transports.DialTimeout); err != nil {
				fmt.Fprintf(out, "  %s Gateway %s reachable\n", crossMark, name)
				fmt.Fprintf(out, "      Error: %v\n", err)
				failed = true
			} else {
				fmt.Fprintf(out, "  %s Gateway %s reachable\n", checkMark, name)
			}
		}
	}

	if validateCheckJournal && cfg.Journal.Enabled {
		if err := checkJournalWritable(cfg.Journal.DSN); err != nil {
			fmt.Fprintf(out, "  %s Journal writable\n", crossMark)
			fmt.Fprintf(out, "      Error: %v\n", err)
			failed = true
		} else {
			fmt.Fprintf(out, "  %s Journal writable\n", checkMark)
		}
	}

	fmt.Fprintln(out)
	if failed {
		return fmt.Errorf("some checks failed")
	}
	fmt.Fprintln(out, "Configuration is valid.")
	return nil
}

func checkGatewayReachable(url string, timeout time.Duration) error {
	dialer := websocket.Dialer{HandshakeTimeout: timeout}
	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return err
	}
	return conn.Close()
}

func checkJournalWritable(dsn string) error {
	db, err := sqlite.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.Migrate(ctx)
}

const (
	checkMark = "\033[32m✓\033[0m"
	crossMark = "\033[31m✗\033[0m"
)
