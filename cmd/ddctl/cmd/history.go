package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <asin>",
		Short: "Show price history for a product",
		Args:  cobra.ExactArgs(1),
		Example: `  ddctl history B0ABCDEFGH
  ddctl history B0ABCDEFGH --limit 25 --output json`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			points, err := c.GetHistory(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(points)
			}
			if len(points) == 0 {
				fmt.Printf("No price history for %s.\n", args[0])
				return nil
			}
			return printHistoryTable(points)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum points to return (default 100)")

	return cmd
}
