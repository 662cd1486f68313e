// Package cmd implements the CLI commands for the dealdrop server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dealdrop",
	Short: "Amazon price-drop alert service",
	Long:  "An API-first service that watches Amazon product prices, evaluates fixed-price and percentage-drop alert rules with a cooldown state machine, and sends email notifications when a tracked price drops.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
