package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverAddr  string
	accessToken string
	verbose     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "willctl",
	Short: "Manage inactivity-triggered wills on a WillKeeper server",
	Long: `willctl talks to a WillKeeper server over gRPC. Register conditional
transfers that fire after wallet inactivity, keep them alive with pulses,
and claim expired inheritances.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverAddr, "server", "s", "127.0.0.1:50051", "WillKeeper server address")
	rootCmd.PersistentFlags().StringVarP(&accessToken, "token", "t", os.Getenv("WILLKEEPER_TOKEN"), "Access token (defaults to WILLKEEPER_TOKEN)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
