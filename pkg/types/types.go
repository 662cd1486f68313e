// Package domain defines the core business types for dealdrop.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AlertMode selects how a tracker decides that a price drop is worth an alert.
type AlertMode string

// Alert mode constants.
const (
	AlertFixedPrice     AlertMode = "fixed_price"
	AlertPercentageDrop AlertMode = "percentage_drop"
)

// Valid reports whether m is a known alert mode.
func (m AlertMode) Valid() bool {
	return m == AlertFixedPrice || m == AlertPercentageDrop
}

// DefaultCooldownHours is the minimum time between two alerts for the same
// tracker when the tracker does not override it.
const DefaultCooldownHours = 48

// ProductSnapshot is a point-in-time read of a tracked product from the
// catalog. Snapshots are produced fresh on each processing cycle and never
// persisted; price history keeps its own rows.
type ProductSnapshot struct {
	ASIN       string `json:"asin"`
	Title      string `json:"title"`
	ProductURL string `json:"product_url"`
	ImageURL   string `json:"image_url,omitempty"`

	// CurrentPrice is the offer price at fetch time, always > 0.
	CurrentPrice decimal.Decimal `json:"current_price"`
	// OriginalPrice is the list ("was") price when the catalog reports one.
	// When present it is >= CurrentPrice.
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`

	FetchedAt time.Time `json:"fetched_at"`
}

// Baseline returns the best-known "was" price for discount calculations:
// the original price when available, otherwise the current price. The
// fallback always yields a 0% discount, so percentage-mode trackers on
// products without a list price never fire.
func (s *ProductSnapshot) Baseline() decimal.Decimal {
	if s.OriginalPrice != nil {
		return *s.OriginalPrice
	}
	return s.CurrentPrice
}

// Tracker is a user's subscription to price alerts for one product.
type Tracker struct {
	ID        string    `json:"id"         db:"id"`
	Recipient string    `json:"recipient"  db:"recipient"`
	ASIN      string    `json:"asin"       db:"asin"`
	AlertMode AlertMode `json:"alert_mode" db:"alert_mode"`

	// TargetPrice is required when AlertMode is fixed_price.
	TargetPrice *decimal.Decimal `json:"target_price,omitempty" db:"target_price"`
	// PercentThreshold is required when AlertMode is percentage_drop,
	// a value in (0, 100].
	PercentThreshold *decimal.Decimal `json:"percent_threshold,omitempty" db:"percent_threshold"`

	CooldownHours int `json:"cooldown_hours" db:"cooldown_hours"`

	// Alert state, mutated only by the processor: set on a successful
	// notification, cleared on a rebound reset.
	LastAlertSentAt *time.Time       `json:"last_alert_sent_at,omitempty" db:"last_alert_sent_at"`
	LastAlertPrice  *decimal.Decimal `json:"last_alert_price,omitempty"   db:"last_alert_price"`

	// Version guards read-modify-write of the alert state fields. Every
	// alert-state update increments it and is conditioned on the value
	// read at evaluation time.
	Version int `json:"version" db:"version"`

	Enabled   bool      `json:"enabled"    db:"enabled"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Cooldown returns the tracker's cooldown as a duration, falling back to
// DefaultCooldownHours when unset.
func (t *Tracker) Cooldown() time.Duration {
	hours := t.CooldownHours
	if hours <= 0 {
		hours = DefaultCooldownHours
	}
	return time.Duration(hours) * time.Hour
}

// InCooldown reports whether now still falls inside the cooldown window
// opened by the last sent alert.
func (t *Tracker) InCooldown(now time.Time) bool {
	if t.LastAlertSentAt == nil {
		return false
	}
	return now.Sub(*t.LastAlertSentAt) < t.Cooldown()
}

// PricePoint records one observed price for an ASIN, kept for history
// charts and baseline inspection.
type PricePoint struct {
	ID         string          `json:"id"          db:"id"`
	ASIN       string          `json:"asin"        db:"asin"`
	Price      decimal.Decimal `json:"price"       db:"price"`
	ObservedAt time.Time       `json:"observed_at" db:"observed_at"`
}

// JobRun records a single execution of a processing run.
type JobRun struct {
	ID          string     `json:"id"                     db:"id"`
	JobName     string     `json:"job_name"               db:"job_name"`
	StartedAt   time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Status      string     `json:"status"                 db:"status"`
	AlertsSent  int        `json:"alerts_sent"            db:"alerts_sent"`
	ErrorCount  int        `json:"error_count"            db:"error_count"`
	ErrorText   string     `json:"error_text,omitempty"   db:"error_text"`
}

// Job run status constants.
const (
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)
