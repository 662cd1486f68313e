package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/dealdrop/dealdrop/internal/catalog"
	"github.com/dealdrop/dealdrop/internal/metrics"
	"github.com/dealdrop/dealdrop/internal/notify"
	"github.com/dealdrop/dealdrop/internal/store"
	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// JobName identifies the processing run in job_runs and job_locks rows.
const JobName = "price_alerts"

var tracer = otel.Tracer("github.com/dealdrop/dealdrop/internal/alert")

const (
	defaultConcurrency = 4
	defaultLockTTL     = 15 * time.Minute
)

// ErrRunInProgress is returned when a run is requested while another run
// holds the single-flight guard, in this process or in another instance.
var ErrRunInProgress = errors.New("processing run already in progress")

// ProcessingError records one tracker's failure within a run. Per-tracker
// failures never abort the batch.
type ProcessingError struct {
	TrackerID string
	Stage     string
	Err       error
}

func (e ProcessingError) Error() string {
	return fmt.Sprintf("tracker %s: %s: %v", e.TrackerID, e.Stage, e.Err)
}

func (e ProcessingError) Unwrap() error {
	return e.Err
}

// Processing stages reported in ProcessingError and the errors metric.
const (
	StageSnapshot   = "snapshot"
	StageReset      = "reset_cooldown"
	StageNotify     = "notify"
	StageAlertState = "alert_state"
)

// Result summarizes one processing run.
type Result struct {
	RunID      string
	AlertsSent int
	Errors     []ProcessingError
}

// Processor walks all enabled trackers, evaluates each against a fresh
// catalog snapshot, and dispatches notifications for positive decisions.
// It owns all mutation of tracker alert state.
type Processor struct {
	store     store.Store
	catalog   catalog.Client
	notifier  notify.Notifier
	evaluator *Evaluator
	log       *slog.Logger

	concurrency int
	lockTTL     time.Duration
	holder      string
	now         func() time.Time

	running atomic.Bool
}

// ProcessorOption configures the Processor.
type ProcessorOption func(*Processor)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.log = l
	}
}

// WithReboundPercent sets the rebound percentage used for cooldown resets.
func WithReboundPercent(pct float64) ProcessorOption {
	return func(p *Processor) {
		p.evaluator = NewEvaluator(pct)
	}
}

// WithConcurrency bounds the worker pool for per-tracker processing.
func WithConcurrency(n int) ProcessorOption {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLockTTL sets the cross-instance job lock lease duration.
func WithLockTTL(d time.Duration) ProcessorOption {
	return func(p *Processor) {
		p.lockTTL = d
	}
}

// WithNowFunc overrides the clock, for tests.
func WithNowFunc(now func() time.Time) ProcessorOption {
	return func(p *Processor) {
		p.now = now
	}
}

// NewProcessor creates a Processor with injected dependencies.
func NewProcessor(
	s store.Store,
	c catalog.Client,
	n notify.Notifier,
	opts ...ProcessorOption,
) *Processor {
	p := &Processor{
		store:       s,
		catalog:     c,
		notifier:    n,
		evaluator:   NewEvaluator(DefaultReboundPercent),
		log:         slog.Default(),
		concurrency: defaultConcurrency,
		lockTTL:     defaultLockTTL,
		holder:      uuid.NewString(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessAll executes one processing run over all enabled trackers.
//
// Runs are single-flight: an in-process guard rejects overlap within this
// instance and a database lease rejects overlap across instances. A rejected
// run returns ErrRunInProgress. Per-tracker failures are collected into the
// Result; only failures that prevent the run from starting at all are
// returned as an error.
func (p *Processor) ProcessAll(ctx context.Context) (*Result, error) {
	if !p.running.CompareAndSwap(false, true) {
		metrics.RunsOverlappedTotal.Inc()
		return nil, ErrRunInProgress
	}
	defer p.running.Store(false)

	acquired, err := p.store.AcquireJobLock(ctx, JobName, p.holder, p.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquiring job lock: %w", err)
	}
	if !acquired {
		metrics.RunsOverlappedTotal.Inc()
		return nil, ErrRunInProgress
	}
	defer func() {
		releaseCtx := context.WithoutCancel(ctx)
		if err := p.store.ReleaseJobLock(releaseCtx, JobName, p.holder); err != nil {
			p.log.Error("releasing job lock failed", "error", err)
		}
	}()

	ctx, span := tracer.Start(ctx, "alert.ProcessAll")
	defer span.End()

	runID, err := p.store.InsertJobRun(ctx, JobName)
	if err != nil {
		return nil, fmt.Errorf("recording job run: %w", err)
	}
	span.SetAttributes(attribute.String("run_id", runID))

	metrics.RunsTotal.Inc()
	start := time.Now()
	defer func() {
		metrics.RunDuration.Observe(time.Since(start).Seconds())
	}()

	result := &Result{RunID: runID}

	trackers, err := p.store.ListTrackers(ctx, true)
	if err != nil {
		p.completeRun(ctx, runID, domain.JobFailed, result, err.Error())
		return nil, fmt.Errorf("listing trackers: %w", err)
	}

	p.log.Info("processing run started",
		"run_id", runID,
		"trackers", len(trackers),
		"concurrency", p.concurrency,
	)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i := range trackers {
		t := &trackers[i]

		// Cooperative cancellation between items. In-flight items run to
		// completion, see processTracker.
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			sent, perr := p.processTracker(gctx, t)

			mu.Lock()
			defer mu.Unlock()
			if sent {
				result.AlertsSent++
			}
			if perr != nil {
				result.Errors = append(result.Errors, *perr)
			}
			return nil
		})
	}

	// Workers never return errors; failures are collected per tracker.
	_ = g.Wait()

	status := domain.JobCompleted
	if ctx.Err() != nil {
		status = domain.JobFailed
	}
	p.completeRun(ctx, runID, status, result, errorText(result.Errors))

	p.log.Info("processing run finished",
		"run_id", runID,
		"alerts_sent", result.AlertsSent,
		"errors", len(result.Errors),
		"duration", time.Since(start).Round(time.Millisecond),
	)

	return result, ctx.Err()
}

// processTracker runs the full evaluate-notify-update sequence for one
// tracker. It returns whether an alert was sent and recorded, plus any
// error isolated to this tracker.
func (p *Processor) processTracker(ctx context.Context, t *domain.Tracker) (bool, *ProcessingError) {
	snap, err := p.catalog.GetItem(ctx, t.ASIN)
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues(StageSnapshot).Inc()
		p.log.Warn("snapshot unavailable", "tracker", t.ID, "asin", t.ASIN, "error", err)
		return false, &ProcessingError{TrackerID: t.ID, Stage: StageSnapshot, Err: err}
	}

	if err := p.store.InsertPricePoint(ctx, snap.ASIN, snap.CurrentPrice, snap.FetchedAt); err != nil {
		// History is best-effort; the evaluation still proceeds.
		p.log.Warn("recording price point failed", "asin", snap.ASIN, "error", err)
	}

	now := p.now()
	decision := p.evaluator.Evaluate(snap, t, now)

	switch decision.Action {
	case ActionResetCooldown:
		return false, p.resetCooldown(ctx, t, snap)

	case ActionSuppress:
		metrics.AlertsSuppressedTotal.WithLabelValues(string(decision.Reason)).Inc()
		// An invalid baseline means the catalog data can't support a
		// percent evaluation, worth surfacing above routine suppressions.
		logSuppressed := p.log.Debug
		if decision.Reason == ReasonInvalidBaseline {
			logSuppressed = p.log.Warn
		}
		logSuppressed("alert suppressed",
			"tracker", t.ID,
			"asin", t.ASIN,
			"reason", decision.Reason,
			"current_price", snap.CurrentPrice,
		)
		return false, nil

	case ActionFire:
		return p.fire(ctx, t, snap, now)
	}

	return false, nil
}

// resetCooldown clears the tracker's alert state after a price rebound.
// The tracker does not fire this cycle; it becomes eligible on the next one.
func (p *Processor) resetCooldown(ctx context.Context, t *domain.Tracker, snap *domain.ProductSnapshot) *ProcessingError {
	err := p.store.UpdateAlertState(ctx, t.ID, nil, nil, t.Version)
	if errors.Is(err, store.ErrVersionConflict) {
		p.log.Debug("cooldown reset skipped, tracker already updated", "tracker", t.ID)
		return nil
	}
	if err != nil {
		metrics.ProcessingErrorsTotal.WithLabelValues(StageReset).Inc()
		return &ProcessingError{TrackerID: t.ID, Stage: StageReset, Err: err}
	}

	metrics.CooldownResetsTotal.Inc()
	p.log.Info("cooldown reset on rebound",
		"tracker", t.ID,
		"asin", t.ASIN,
		"current_price", snap.CurrentPrice,
		"last_alert_price", t.LastAlertPrice,
	)
	return nil
}

// fire sends the notification and records the alert state. The send and the
// state write are a unit: once the notification is in flight, run
// cancellation no longer applies, otherwise a sent-but-unrecorded alert
// would be re-sent next run.
func (p *Processor) fire(ctx context.Context, t *domain.Tracker, snap *domain.ProductSnapshot, now time.Time) (bool, *ProcessingError) {
	sendCtx := context.WithoutCancel(ctx)

	alert := &notify.Alert{
		Recipient:  t.Recipient,
		Title:      snap.Title,
		ASIN:       snap.ASIN,
		OldPrice:   snap.Baseline().Round(2),
		NewPrice:   snap.CurrentPrice.Round(2),
		ProductURL: snap.ProductURL,
		ImageURL:   snap.ImageURL,
	}

	receipt, err := p.notifier.SendPriceDrop(sendCtx, alert)
	if err != nil {
		metrics.NotificationFailuresTotal.Inc()
		p.log.Error("notification failed", "tracker", t.ID, "asin", t.ASIN, "error", err)
		return false, &ProcessingError{TrackerID: t.ID, Stage: StageNotify, Err: err}
	}

	alertPrice := snap.CurrentPrice.Round(2)
	if err := p.store.UpdateAlertState(sendCtx, t.ID, &now, &alertPrice, t.Version); err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			// Another writer updated the tracker between our snapshot and
			// this write. The notification went out, so log it, but a
			// conflict is a safe skip, not a failed state write.
			p.log.Warn("alert state not recorded, tracker updated concurrently",
				"tracker", t.ID,
				"asin", t.ASIN,
			)
			return false, nil
		}
		metrics.ProcessingErrorsTotal.WithLabelValues(StageAlertState).Inc()
		p.log.Error("recording alert state failed, duplicate alert possible next run",
			"tracker", t.ID,
			"error", err,
		)
		return false, &ProcessingError{TrackerID: t.ID, Stage: StageAlertState, Err: err}
	}

	metrics.AlertsSentTotal.Inc()
	p.log.Info("alert sent",
		"tracker", t.ID,
		"asin", t.ASIN,
		"recipient", t.Recipient,
		"old_price", alert.OldPrice,
		"new_price", alert.NewPrice,
		"provider_message_id", receipt.ProviderMessageID,
	)
	return true, nil
}

func (p *Processor) completeRun(ctx context.Context, runID, status string, result *Result, errText string) {
	completeCtx := context.WithoutCancel(ctx)
	err := p.store.CompleteJobRun(completeCtx, runID, status, result.AlertsSent, len(result.Errors), errText)
	if err != nil {
		p.log.Error("completing job run failed", "run_id", runID, "error", err)
	}
}

// errorText flattens per-tracker errors into a short summary for the
// job_runs row; the first few errors are enough for triage.
func errorText(errs []ProcessingError) string {
	if len(errs) == 0 {
		return ""
	}

	const maxShown = 5
	parts := make([]string, 0, maxShown+1)
	for i, e := range errs {
		if i == maxShown {
			parts = append(parts, fmt.Sprintf("... and %d more", len(errs)-maxShown))
			break
		}
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}
