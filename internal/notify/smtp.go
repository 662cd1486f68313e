package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPNotifier implements Notifier over plain SMTP. It is the fallback
// transport for deployments without a SendGrid account.
type SMTPNotifier struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	sendFunc  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// SMTPOption configures an SMTPNotifier.
type SMTPOption func(*SMTPNotifier)

// WithSendFunc overrides the SMTP send function, for tests.
func WithSendFunc(f func(addr string, a smtp.Auth, from string, to []string, msg []byte) error) SMTPOption {
	return func(n *SMTPNotifier) {
		n.sendFunc = f
	}
}

// NewSMTPNotifier creates a notifier that delivers mail through an SMTP relay.
func NewSMTPNotifier(host string, port int, username, password, fromEmail string, opts ...SMTPOption) *SMTPNotifier {
	n := &SMTPNotifier{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromEmail: fromEmail,
		sendFunc:  smtp.SendMail,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// SendPriceDrop sends a single price-drop email. SMTP reports no message id,
// so the receipt's ProviderMessageID is always empty.
func (n *SMTPNotifier) SendPriceDrop(ctx context.Context, alert *Alert) (*Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("Price drop: %s is now $%s", alert.Title, alert.NewPrice.StringFixed(2))

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.fromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", alert.Recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(plainBody(alert))

	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}

	addr := fmt.Sprintf("%s:%d", n.host, n.port)
	if err := n.sendFunc(addr, auth, n.fromEmail, []string{alert.Recipient}, []byte(msg.String())); err != nil {
		return nil, fmt.Errorf("sending via smtp: %w", err)
	}

	return &Receipt{}, nil
}
