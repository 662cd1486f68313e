package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

func trackersCmd() *cobra.Command {
	trackersRoot := &cobra.Command{
		Use:   "trackers",
		Short: "Manage price trackers",
		Long: "Manage price trackers that watch an Amazon product and alert a\n" +
			"recipient when the price drops below a fixed target or by a\n" +
			"percentage off the list price.",
	}

	trackersRoot.AddCommand(
		trackersListCmd(),
		trackersGetCmd(),
		trackersCreateCmd(),
		trackersEnableCmd(),
		trackersDisableCmd(),
		trackersDeleteCmd(),
	)

	return trackersRoot
}

func trackersListCmd() *cobra.Command {
	var enabledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all trackers",
		Example: `  ddctl trackers list
  ddctl trackers list --enabled
  ddctl trackers list --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			trackers, err := c.ListTrackers(context.Background(), enabledOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(trackers)
			}
			if len(trackers) == 0 {
				fmt.Println("No trackers found.")
				return nil
			}
			return printTrackerTable(trackers)
		},
	}
	cmd.Flags().BoolVar(&enabledOnly, "enabled", false, "only show enabled trackers")

	return cmd
}

func trackersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show tracker details",
		Example: `  ddctl trackers get abc123
  ddctl trackers get abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			t, err := c.GetTracker(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(t)
			}
			return printTrackerDetail(t)
		},
	}
}

func trackersCreateCmd() *cobra.Command {
	var (
		recipient string
		asin      string
		url       string
		mode      string
		target    string
		threshold string
		cooldown  int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new tracker",
		Long: "Create a new price tracker from an ASIN or Amazon product URL.\n" +
			"fixed_price trackers alert when the price falls to or below the\n" +
			"target; percentage_drop trackers alert when the discount off the\n" +
			"list price reaches the threshold.",
		Example: `  # Alert when the price reaches $25 or less
  ddctl trackers create --recipient me@example.com \
    --url "https://www.amazon.com/dp/B0ABCDEFGH" \
    --mode fixed_price --target 25.00

  # Alert on a 20% discount, with a 24h cooldown
  ddctl trackers create --recipient me@example.com --asin B0ABCDEFGH \
    --mode percentage_drop --threshold 20 --cooldown 24`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if recipient == "" {
				return fmt.Errorf("--recipient is required")
			}
			if asin == "" && url == "" {
				return fmt.Errorf("--asin or --url is required")
			}

			t := &domain.Tracker{
				Recipient:     recipient,
				ASIN:          asin,
				AlertMode:     domain.AlertMode(mode),
				CooldownHours: cooldown,
				Enabled:       true,
			}
			if target != "" {
				d, err := decimal.NewFromString(target)
				if err != nil {
					return fmt.Errorf("parsing --target: %w", err)
				}
				t.TargetPrice = &d
			}
			if threshold != "" {
				d, err := decimal.NewFromString(threshold)
				if err != nil {
					return fmt.Errorf("parsing --threshold: %w", err)
				}
				t.PercentThreshold = &d
			}

			c := newClient()
			created, err := c.CreateTracker(context.Background(), t, url)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(created)
			}
			fmt.Printf("Tracker created: %s (%s)\n", created.ASIN, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&recipient, "recipient", "", "email address to alert")
	cmd.Flags().StringVar(&asin, "asin", "", "Amazon ASIN")
	cmd.Flags().StringVar(&url, "url", "", "Amazon product URL")
	cmd.Flags().
		StringVar(&mode, "mode", "fixed_price", "alert mode (fixed_price, percentage_drop)")
	cmd.Flags().StringVar(&target, "target", "", "target price for fixed_price mode")
	cmd.Flags().StringVar(&threshold, "threshold", "", "discount percent for percentage_drop mode")
	cmd.Flags().IntVar(&cooldown, "cooldown", 0, "cooldown hours between alerts (default 48)")

	return cmd
}

func trackersEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <id>",
		Short:   "Enable a tracker",
		Example: `  ddctl trackers enable abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTrackerSetEnabled(args[0], true)
		},
	}
}

func trackersDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <id>",
		Short:   "Disable a tracker",
		Example: `  ddctl trackers disable abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTrackerSetEnabled(args[0], false)
		},
	}
}

func trackersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a tracker",
		Example: `  ddctl trackers delete abc123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteTracker(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Tracker %s deleted.\n", args[0])
			return nil
		},
	}
}

func runTrackerSetEnabled(id string, enabled bool) error {
	c := newClient()
	if err := c.SetTrackerEnabled(context.Background(), id, enabled); err != nil {
		return err
	}

	action := "enabled"
	if !enabled {
		action = "disabled"
	}
	fmt.Printf("Tracker %s %s.\n", id, action)
	return nil
}
