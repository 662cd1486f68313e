// Package store defines the datastore abstraction for dealdrop.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrVersionConflict is returned when a conditional update found a different
// version than the caller read. It means another worker already processed the
// tracker; callers skip rather than retry.
var ErrVersionConflict = errors.New("tracker version conflict")

// Store defines all data access operations for dealdrop.
type Store interface {
	// Trackers
	CreateTracker(ctx context.Context, t *domain.Tracker) error
	GetTracker(ctx context.Context, id string) (*domain.Tracker, error)
	ListTrackers(ctx context.Context, enabledOnly bool) ([]domain.Tracker, error)
	UpdateTracker(ctx context.Context, t *domain.Tracker) error
	DeleteTracker(ctx context.Context, id string) error
	SetTrackerEnabled(ctx context.Context, id string, enabled bool) error

	// UpdateAlertState sets (or, with nil arguments, clears) a tracker's
	// last-alert fields. The update is conditioned on expectedVersion and
	// returns ErrVersionConflict when the row changed since it was read.
	UpdateAlertState(
		ctx context.Context,
		id string,
		sentAt *time.Time,
		price *decimal.Decimal,
		expectedVersion int,
	) error

	// Price history
	InsertPricePoint(ctx context.Context, asin string, price decimal.Decimal, observedAt time.Time) error
	ListPriceHistory(ctx context.Context, asin string, limit int) ([]domain.PricePoint, error)

	// Job runs
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, alertsSent, errorCount int, errText string) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)

	// Job lock, the cross-instance single-flight guard for processing runs.
	AcquireJobLock(ctx context.Context, jobName string, holder string, ttl time.Duration) (bool, error)
	ReleaseJobLock(ctx context.Context, jobName string, holder string) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
