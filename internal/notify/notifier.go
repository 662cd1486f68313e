// Package notify defines the notification interface and implementations
// for price-drop alert delivery.
package notify

import (
	"context"

	"github.com/shopspring/decimal"
)

// Alert contains the data needed to send a price-drop notification.
type Alert struct {
	Recipient  string
	Title      string
	ASIN       string
	OldPrice   decimal.Decimal
	NewPrice   decimal.Decimal
	ProductURL string
	ImageURL   string
}

// DropPercent returns the relative drop from OldPrice to NewPrice, rounded
// to one decimal place. Zero when OldPrice is not usable.
func (a *Alert) DropPercent() decimal.Decimal {
	if !a.OldPrice.IsPositive() {
		return decimal.Zero
	}
	return a.OldPrice.Sub(a.NewPrice).
		Div(a.OldPrice).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

// Receipt reports a successful delivery.
type Receipt struct {
	// ProviderMessageID is the transport's message identifier, empty when
	// the transport does not report one.
	ProviderMessageID string
}

// Notifier defines the interface for sending price-drop notifications.
type Notifier interface {
	SendPriceDrop(ctx context.Context, alert *Alert) (*Receipt, error)
}
