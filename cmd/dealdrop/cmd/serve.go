package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dealdrop/dealdrop/internal/alert"
	"github.com/dealdrop/dealdrop/internal/api/handlers"
	"github.com/dealdrop/dealdrop/internal/api/middleware"
	"github.com/dealdrop/dealdrop/internal/catalog"
	"github.com/dealdrop/dealdrop/internal/config"
	"github.com/dealdrop/dealdrop/internal/notify"
	"github.com/dealdrop/dealdrop/internal/store"
	"github.com/dealdrop/dealdrop/internal/telemetry"
	"github.com/dealdrop/dealdrop/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
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

	scheduler, err := alert.NewScheduler(processor, cfg.Schedule.ProcessInterval, log)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	scheduler.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	healthHandler := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/readyz", healthHandler.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	trackerHandler := handlers.NewTrackerHandler(st)
	e.GET("/api/v1/trackers", trackerHandler.List)
	e.POST("/api/v1/trackers", trackerHandler.Create)
	e.GET("/api/v1/trackers/:id", trackerHandler.Get)
	e.PUT("/api/v1/trackers/:id", trackerHandler.Update)
	e.PUT("/api/v1/trackers/:id/enabled", trackerHandler.SetEnabled)
	e.DELETE("/api/v1/trackers/:id", trackerHandler.Delete)

	processHandler := handlers.NewProcessHandler(processor)
	e.POST("/api/v1/process", processHandler.Trigger)

	runsHandler := handlers.NewRunsHandler(st)
	e.GET("/api/v1/runs", runsHandler.List)

	historyHandler := handlers.NewHistoryHandler(st)
	e.GET("/api/v1/history/:asin", historyHandler.Get)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "process_interval", cfg.Schedule.ProcessInterval.String())

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Let an in-flight processing run finish before closing the store.
	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		log.Warn("timed out waiting for processing run to finish")
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("flushing traces", "err", err)
	}

	log.Info("server stopped")
	return nil
}

// buildNotifier picks the configured notification transport: SendGrid when
// enabled, otherwise SMTP, otherwise a no-op that only logs.
func buildNotifier(cfg config.NotificationsConfig, log *slog.Logger) notify.Notifier {
	if cfg.SendGrid.Enabled {
		return notify.NewSendGridNotifier(
			cfg.SendGrid.APIKey,
			cfg.SendGrid.FromEmail,
			cfg.SendGrid.FromName,
		)
	}
	if cfg.SMTP.Enabled {
		return notify.NewSMTPNotifier(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.FromEmail,
		)
	}
	log.Warn("no notification transport configured, alerts will be logged only")
	return notify.NewNoOpNotifier(log)
}
