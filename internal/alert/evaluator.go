// Package alert implements the price-alert decision logic and the
// processing pipeline that turns tracker evaluations into notifications.
package alert

import (
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// DefaultReboundPercent is the price increase over the last alerted price,
// in percent, that makes an active cooldown eligible for reset.
const DefaultReboundPercent = 10.0

// Action is what the processor should do with a tracker this cycle.
type Action int

// Evaluation actions.
const (
	// ActionSuppress means no alert this cycle; Reason says why.
	ActionSuppress Action = iota
	// ActionFire means the tracker's condition is met and a notification
	// should be sent.
	ActionFire
	// ActionResetCooldown means the price rebounded above the rebound
	// threshold while in cooldown; the processor clears the alert state
	// and the tracker becomes eligible again next cycle, not this one.
	ActionResetCooldown
)

// Reason explains a suppression.
type Reason string

// Suppression reasons.
const (
	ReasonInCooldown           Reason = "in_cooldown"
	ReasonPriceAboveTarget     Reason = "price_above_target"
	ReasonInsufficientDiscount Reason = "insufficient_discount"
	ReasonInvalidBaseline      Reason = "invalid_baseline"
)

// Decision is the evaluator's output for one tracker and one snapshot.
type Decision struct {
	Action Action
	Reason Reason
}

var hundred = decimal.NewFromInt(100)

// Evaluator decides whether a tracker should fire for a given snapshot.
// It is pure: it reads tracker and snapshot state and mutates nothing.
type Evaluator struct {
	// reboundFactor is 1 + reboundPercent/100; a current price strictly
	// above lastAlertPrice * reboundFactor resets an active cooldown.
	reboundFactor decimal.Decimal
}

// NewEvaluator creates an Evaluator with the given rebound percentage.
// Values <= 0 fall back to DefaultReboundPercent.
func NewEvaluator(reboundPercent float64) *Evaluator {
	if reboundPercent <= 0 {
		reboundPercent = DefaultReboundPercent
	}
	factor := decimal.NewFromInt(1).Add(
		decimal.NewFromFloat(reboundPercent).Div(hundred),
	)
	return &Evaluator{reboundFactor: factor}
}

// Evaluate applies the cooldown check and the tracker's alert condition to
// the snapshot. All price comparisons round to cents first so that binary
// float noise in upstream data cannot flip a boundary case.
func (e *Evaluator) Evaluate(snap *domain.ProductSnapshot, t *domain.Tracker, now time.Time) Decision {
	current := snap.CurrentPrice.Round(2)

	if t.InCooldown(now) {
		if t.LastAlertPrice != nil {
			reboundAt := t.LastAlertPrice.Mul(e.reboundFactor).Round(2)
			if current.GreaterThan(reboundAt) {
				return Decision{Action: ActionResetCooldown}
			}
		}
		return Decision{Action: ActionSuppress, Reason: ReasonInCooldown}
	}

	switch t.AlertMode {
	case domain.AlertPercentageDrop:
		return evaluatePercentageDrop(snap, t, current)
	case domain.AlertFixedPrice:
		return evaluateFixedPrice(t, current)
	default:
		// Unknown modes never fire. Mode validity is enforced at the API
		// and schema layers; this is the safe fallback.
		return Decision{Action: ActionSuppress, Reason: ReasonInvalidBaseline}
	}
}

func evaluatePercentageDrop(snap *domain.ProductSnapshot, t *domain.Tracker, current decimal.Decimal) Decision {
	baseline := snap.Baseline().Round(2)
	if !baseline.IsPositive() || t.PercentThreshold == nil {
		return Decision{Action: ActionSuppress, Reason: ReasonInvalidBaseline}
	}

	discountPct := baseline.Sub(current).Div(baseline).Mul(hundred)
	if discountPct.GreaterThanOrEqual(*t.PercentThreshold) {
		return Decision{Action: ActionFire}
	}
	return Decision{Action: ActionSuppress, Reason: ReasonInsufficientDiscount}
}

func evaluateFixedPrice(t *domain.Tracker, current decimal.Decimal) Decision {
	if t.TargetPrice != nil && current.LessThanOrEqual(t.TargetPrice.Round(2)) {
		return Decision{Action: ActionFire}
	}
	return Decision{Action: ActionSuppress, Reason: ReasonPriceAboveTarget}
}
