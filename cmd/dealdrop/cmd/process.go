package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dealdrop/dealdrop/internal/alert"
	"github.com/dealdrop/dealdrop/internal/catalog"
	"github.com/dealdrop/dealdrop/internal/config"
	"github.com/dealdrop/dealdrop/internal/store"
	"github.com/dealdrop/dealdrop/pkg/logger"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run one processing pass over all enabled trackers and exit",
	RunE:  runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	limiter := catalog.NewRateLimiter(
		cfg.Amazon.RateLimit.PerSecond,
		cfg.Amazon.RateLimit.Burst,
		cfg.Amazon.RateLimit.DailyLimit,
	)
	paapi := catalog.NewPAAPIClient(
		cfg.Amazon.AccessKey,
		cfg.Amazon.SecretKey,
		cfg.Amazon.PartnerTag,
		catalog.WithHost(cfg.Amazon.Host),
		catalog.WithRegion(cfg.Amazon.Region),
		catalog.WithRateLimiter(limiter),
		catalog.WithPAAPIHTTPClient(&http.Client{Timeout: cfg.Amazon.Timeout}),
	)
	cat := catalog.NewCachedClient(paapi, cfg.Amazon.CacheTTL)

	notifier := buildNotifier(cfg.Notifications, log)

	processor := alert.NewProcessor(st, cat, notifier,
		alert.WithLogger(log),
		alert.WithReboundPercent(cfg.Alerts.ReboundPercent),
		alert.WithConcurrency(cfg.Alerts.Concurrency),
	)

	result, err := processor.ProcessAll(ctx)
	if err != nil {
		return fmt.Errorf("processing trackers: %w", err)
	}

	log.Info("processing complete",
		"run_id", result.RunID,
		"alerts_sent", result.AlertsSent,
		"errors", len(result.Errors),
	)
	for _, e := range result.Errors {
		log.Error("tracker failed", "tracker_id", e.TrackerID, "stage", e.Stage, "err", e.Err)
	}

	return nil
}
