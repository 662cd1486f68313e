package alert

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dealdrop/dealdrop/internal/metrics"
)

// Scheduler runs the processor on a fixed interval.
type Scheduler struct {
	cron      *cron.Cron
	processor *Processor
	log       *slog.Logger
}

// NewScheduler creates a Scheduler that triggers a processing run every
// processInterval.
func NewScheduler(
	p *Processor,
	processInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:      c,
		processor: p,
		log:       log,
	}

	if _, err := c.AddFunc(
		"@every "+processInterval.String(),
		s.runProcessing,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.publishNextRun()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runProcessing() {
	ctx := context.Background()
	s.log.Info("scheduled processing run starting")

	defer s.publishNextRun()

	_, err := s.processor.ProcessAll(ctx)
	if errors.Is(err, ErrRunInProgress) {
		s.log.Warn("scheduled run skipped, previous run still in flight")
		return
	}
	if err != nil {
		s.log.Error("scheduled processing run failed", "error", err)
	}
}

func (s *Scheduler) publishNextRun() {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return
	}
	metrics.SchedulerNextRunTimestamp.Set(float64(entries[0].Next.Unix()))
}
