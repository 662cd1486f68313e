package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func processCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Trigger a processing run",
		Long: "Trigger an immediate processing run on the server: fetch current\n" +
			"prices, evaluate every enabled tracker, and send any due alerts.\n" +
			"Fails with a conflict if a run is already in progress.",
		Example: `  ddctl process
  ddctl process --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			result, err := c.TriggerProcess(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			fmt.Printf("Run %s complete: %d alerts sent, %d errors.\n",
				result.RunID, result.AlertsSent, result.ErrorCount)
			for _, e := range result.Errors {
				fmt.Printf("  tracker %s (%s): %s\n", e.TrackerID, e.Stage, e.Error)
			}
			return nil
		},
	}
}
