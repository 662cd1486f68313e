package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when neither SendGrid nor SMTP is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendPriceDrop logs and discards a single alert.
func (n *NoOpNotifier) SendPriceDrop(_ context.Context, alert *Alert) (*Receipt, error) {
	n.log.Debug("notification discarded (no backend configured)",
		"recipient", alert.Recipient,
		"asin", alert.ASIN,
		"new_price", alert.NewPrice.StringFixed(2),
	)
	return &Receipt{}, nil
}
