package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
// Numeric columns are scanned directly into shopspring decimals.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	cfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateTracker inserts a new tracker, filling the generated fields.
func (s *PostgresStore) CreateTracker(ctx context.Context, t *domain.Tracker) error {
	args := pgx.NamedArgs{
		"recipient":         t.Recipient,
		"asin":              t.ASIN,
		"alert_mode":        string(t.AlertMode),
		"target_price":      t.TargetPrice,
		"percent_threshold": t.PercentThreshold,
		"cooldown_hours":    t.CooldownHours,
		"enabled":           t.Enabled,
	}

	err := s.pool.QueryRow(ctx, queryCreateTracker, args).Scan(
		&t.ID, &t.Version, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating tracker: %w", err)
	}
	return nil
}

// GetTracker retrieves a tracker by its UUID.
func (s *PostgresStore) GetTracker(ctx context.Context, id string) (*domain.Tracker, error) {
	t := &domain.Tracker{}
	err := scanTracker(s.pool.QueryRow(ctx, queryGetTracker, id), t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tracker %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting tracker: %w", err)
	}
	return t, nil
}

// ListTrackers returns all trackers, optionally only enabled ones.
func (s *PostgresStore) ListTrackers(
	ctx context.Context,
	enabledOnly bool,
) ([]domain.Tracker, error) {
	rows, err := s.pool.Query(ctx, queryListTrackers, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("querying trackers: %w", err)
	}
	defer rows.Close()

	var trackers []domain.Tracker
	for rows.Next() {
		var t domain.Tracker
		if err := scanTracker(rows, &t); err != nil {
			return nil, fmt.Errorf("scanning tracker: %w", err)
		}
		trackers = append(trackers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trackers: %w", err)
	}

	return trackers, nil
}

// UpdateTracker updates a tracker's subscription fields. Alert state and
// version are deliberately not touched here; that is UpdateAlertState's job.
func (s *PostgresStore) UpdateTracker(ctx context.Context, t *domain.Tracker) error {
	args := pgx.NamedArgs{
		"id":                t.ID,
		"recipient":         t.Recipient,
		"asin":              t.ASIN,
		"alert_mode":        string(t.AlertMode),
		"target_price":      t.TargetPrice,
		"percent_threshold": t.PercentThreshold,
		"cooldown_hours":    t.CooldownHours,
		"enabled":           t.Enabled,
	}

	err := s.pool.QueryRow(ctx, queryUpdateTracker, args).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("tracker %s: %w", t.ID, ErrNotFound)
		}
		return fmt.Errorf("updating tracker: %w", err)
	}
	return nil
}

// DeleteTracker removes a tracker.
func (s *PostgresStore) DeleteTracker(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteTracker, id)
	if err != nil {
		return fmt.Errorf("deleting tracker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tracker %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetTrackerEnabled toggles a tracker on or off.
func (s *PostgresStore) SetTrackerEnabled(ctx context.Context, id string, enabled bool) error {
	tag, err := s.pool.Exec(ctx, querySetTrackerEnabled, id, enabled)
	if err != nil {
		return fmt.Errorf("setting tracker enabled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tracker %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateAlertState conditionally updates the last-alert fields.
func (s *PostgresStore) UpdateAlertState(
	ctx context.Context,
	id string,
	sentAt *time.Time,
	price *decimal.Decimal,
	expectedVersion int,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateAlertState, id, sentAt, price, expectedVersion)
	if err != nil {
		return fmt.Errorf("updating alert state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tracker %s at version %d: %w", id, expectedVersion, ErrVersionConflict)
	}
	return nil
}

// InsertPricePoint appends one observed price for an ASIN.
func (s *PostgresStore) InsertPricePoint(
	ctx context.Context,
	asin string,
	price decimal.Decimal,
	observedAt time.Time,
) error {
	_, err := s.pool.Exec(ctx, queryInsertPricePoint, asin, price, observedAt)
	if err != nil {
		return fmt.Errorf("inserting price point: %w", err)
	}
	return nil
}

// ListPriceHistory returns the most recent price points for an ASIN.
func (s *PostgresStore) ListPriceHistory(
	ctx context.Context,
	asin string,
	limit int,
) ([]domain.PricePoint, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.pool.Query(ctx, queryListPriceHistory, asin, limit)
	if err != nil {
		return nil, fmt.Errorf("querying price history: %w", err)
	}
	defer rows.Close()

	var points []domain.PricePoint
	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.ID, &p.ASIN, &p.Price, &p.ObservedAt); err != nil {
			return nil, fmt.Errorf("scanning price point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price points: %w", err)
	}

	return points, nil
}

// InsertJobRun records the start of a processing run.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun records the outcome of a processing run.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	alertsSent, errorCount int,
	errText string,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, alertsSent, errorCount, errText)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns recent job runs, newest first. An empty jobName
// matches all jobs.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt, &r.Status,
			&r.AlertsSent, &r.ErrorCount, &r.ErrorText,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job runs: %w", err)
	}

	return runs, nil
}

// AcquireJobLock attempts to take the named lock for ttl. It returns false
// without error when another live holder has the lock.
func (s *PostgresStore) AcquireJobLock(
	ctx context.Context,
	jobName string,
	holder string,
	ttl time.Duration,
) (bool, error) {
	var name string
	err := s.pool.QueryRow(ctx, queryAcquireJobLock, jobName, holder, ttl).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("acquiring job lock: %w", err)
	}
	return true, nil
}

// ReleaseJobLock releases the named lock if held by holder.
func (s *PostgresStore) ReleaseJobLock(ctx context.Context, jobName string, holder string) error {
	_, err := s.pool.Exec(ctx, queryReleaseJobLock, jobName, holder)
	if err != nil {
		return fmt.Errorf("releasing job lock: %w", err)
	}
	return nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTracker(row rowScanner, t *domain.Tracker) error {
	var mode string
	err := row.Scan(
		&t.ID, &t.Recipient, &t.ASIN, &mode, &t.TargetPrice, &t.PercentThreshold,
		&t.CooldownHours, &t.LastAlertSentAt, &t.LastAlertPrice, &t.Version,
		&t.Enabled, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	t.AlertMode = domain.AlertMode(mode)
	return nil
}
