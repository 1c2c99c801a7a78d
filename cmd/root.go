package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/barterhub/barter-api/pkg/config"
	"github.com/barterhub/barter-api/pkg/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "barter-api",
	Short: "Barter API server",
	Long: `Barter API - the backend for a peer-to-peer bartering marketplace.

Users list items they want to trade, discover nearby listings with
keyword and radius search, and message each other to arrange swaps.

Features:
  • Composable listing search (keyword, category, condition, location, radius)
  • Symbolic and column sorting with stable pagination
  • Accounts with token auth
  • Conversations between traders
  • Listing photo uploads to S3-compatible storage`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads configuration and sets up logging. Commands that do
// not touch config (version, help) skip it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	level, _ := rootCmd.PersistentFlags().GetString("log-level")
	jsonLogs, _ := rootCmd.PersistentFlags().GetBool("json-logs")
	if !rootCmd.PersistentFlags().Changed("log-level") {
		level = config.GetString("logging.level")
	}
	if !rootCmd.PersistentFlags().Changed("json-logs") {
		jsonLogs = config.GetBool("logging.json")
	}

	if err := logger.Init(level, jsonLogs); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
}
