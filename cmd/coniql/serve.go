package main

import (
	"fmt"

	"github.com/artpar/coniql/bootstrap"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the channel server",
	Long: `Start the coniql server.

The server will:
  - Load configuration from coniql.yaml (or --config)
  - Or run from defaults and CONIQL_* environment variables
  - Register the enabled transports (ssim, ca, pva)
  - Serve GraphQL on /graphql, subscriptions on /ws and REST on /api/v1/channels
  - Reload logging settings when the file changes or on SIGHUP

Environment variables:
  CONIQL_SERVER_PORT        - Server port (default: 8080)
  CONIQL_LOG_LEVEL          - Log level: trace, debug, info, warn, error
  CONIQL_CA_URL             - PV Web Socket gateway for ca://
  CONIQL_PVA_URL            - PV Web Socket gateway for pva://
  CONIQL_DEFAULT_TRANSPORT  - Transport for bare channel names
  CONIQL_JOURNAL_ENABLED    - Record batched writes in SQLite

Examples:
  coniql serve
  coniql serve --config /etc/coniql/coniql.yaml
  CONIQL_CA_URL=ws://gateway:8080/pvws/pv coniql serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	path, err := configPath(cmd)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Running with defaults and environment variables (no config file)")
	}

	app, err := bootstrap.New(bootstrap.Options{
		ConfigPath: path,
		Version:    version,
	})
	if err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	// Run (blocks until shutdown)
	return app.Run()
}
