package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "View processing run history",
		Example: `  ddctl runs
  ddctl runs --limit 50
  ddctl runs --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListRuns(context.Background(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No runs found.")
				return nil
			}
			return printRunsTable(runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum runs to return (default 20)")

	return cmd
}
