package notify

import (
	"context"
	"fmt"
	"html"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridNotifier implements Notifier via the SendGrid v3 mail API.
type SendGridNotifier struct {
	client    sendClient
	fromEmail string
	fromName  string
}

// sendClient abstracts the SendGrid client so tests can stub the transport.
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridOption configures a SendGridNotifier.
type SendGridOption func(*SendGridNotifier)

// WithSendClient overrides the SendGrid client, for tests.
func WithSendClient(c sendClient) SendGridOption {
	return func(n *SendGridNotifier) {
		n.client = c
	}
}

// NewSendGridNotifier creates a notifier that delivers mail through SendGrid.
func NewSendGridNotifier(apiKey, fromEmail, fromName string, opts ...SendGridOption) *SendGridNotifier {
	n := &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SendPriceDrop sends a single price-drop email.
func (n *SendGridNotifier) SendPriceDrop(ctx context.Context, alert *Alert) (*Receipt, error) {
	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail("", alert.Recipient)
	subject := fmt.Sprintf("Price drop: %s is now $%s", alert.Title, alert.NewPrice.StringFixed(2))

	message := mail.NewSingleEmail(from, subject, to, plainBody(alert), htmlBody(alert))

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("sending via sendgrid: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}

	return &Receipt{ProviderMessageID: messageID(resp.Headers)}, nil
}

// messageID pulls SendGrid's X-Message-Id response header when present.
func messageID(headers map[string][]string) string {
	for key, values := range headers {
		if len(values) > 0 && http.CanonicalHeaderKey(key) == "X-Message-Id" {
			return values[0]
		}
	}
	return ""
}

func plainBody(alert *Alert) string {
	body := fmt.Sprintf(
		"%s dropped from $%s to $%s (%s%% off).\n\n%s\n",
		alert.Title,
		alert.OldPrice.StringFixed(2),
		alert.NewPrice.StringFixed(2),
		alert.DropPercent().String(),
		alert.ProductURL,
	)
	return body
}

func htmlBody(alert *Alert) string {
	title := html.EscapeString(alert.Title)

	img := ""
	if alert.ImageURL != "" {
		img = fmt.Sprintf(`<p><img src=%q alt=%q width="200"></p>`, alert.ImageURL, title)
	}

	return fmt.Sprintf(
		`<h2>Price drop on %s</h2>
%s<p><s>$%s</s> <strong>$%s</strong> (%s%% off)</p>
<p><a href=%q>View on Amazon</a></p>`,
		title,
		img,
		alert.OldPrice.StringFixed(2),
		alert.NewPrice.StringFixed(2),
		alert.DropPercent().String(),
		alert.ProductURL,
	)
}
