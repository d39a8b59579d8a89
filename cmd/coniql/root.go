package main

import (
	"fmt"
	"io"
	"os"

	"github.com/artpar/coniql/bootstrap"
	"github.com/artpar/coniql/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coniql",
	Short: "Uniform query, write and subscribe access to control-system channels",
	Long: `coniql exposes process variables from several transports behind one API.

Transports:
  ssim   simulated channels (sine, sinewave, rampwave, random, registers)
  ca     Channel Access through a PV Web Socket gateway
  pva    PV Access through a PV Web Socket gateway

Quick start:
  coniql serve                         # GraphQL on :8080/graphql and /ws
  coniql get 'ssim://sine(-1, 1, 4)'   # read a channel once
  coniql put ssim://reg=4.5            # write a channel
  coniql validate                      # check the configuration`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr in one-shot commands")
}

// configPath returns the file to load, or "" to run from defaults and
// CONIQL_* variables. A missing default file is not an error; a missing
// file named with --config is.
func configPath(cmd *cobra.Command) (string, error) {
	if _, err := os.Stat(cfgFile); err == nil {
		return cfgFile, nil
	}
	if cmd.Root().PersistentFlags().Changed("config") {
		return "", fmt.Errorf("config file not found: %s", cfgFile)
	}
	return "", nil
}

// loadConfig loads the configuration the same way serve does.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.LoadFromEnv()
	}
	return config.Load(path)
}

// newOneShotApp builds the application for a single CLI operation.
// It never serves and keeps its metrics off the process registry.
func newOneShotApp(cmd *cobra.Command) (*bootstrap.App, error) {
	path, err := configPath(cmd)
	if err != nil {
		return nil, err
	}
	var logs io.Writer = io.Discard
	if verbose {
		logs = cmd.ErrOrStderr()
	}
	return bootstrap.New(bootstrap.Options{
		ConfigPath: path,
		Version:    version,
		LogOutput:  logs,
		Registry:   prometheus.NewRegistry(),
	})
}
