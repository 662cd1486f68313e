package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAlert() *Alert {
	return &Alert{
		Recipient:  "buyer@example.com",
		Title:      "Anker USB-C Hub",
		ASIN:       "B0TESTASIN",
		OldPrice:   decimal.NewFromFloat(49.99),
		NewPrice:   decimal.NewFromFloat(34.99),
		ProductURL: "https://www.amazon.com/dp/B0TESTASIN",
		ImageURL:   "https://m.media-amazon.com/images/I/test.jpg",
	}
}

// stubSendClient records the outgoing message and returns a canned response.
type stubSendClient struct {
	resp *rest.Response
	err  error
	sent *mail.SGMailV3
}

func (s *stubSendClient) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	s.sent = email
	return s.resp, s.err
}

func TestSendGridNotifier_SendPriceDrop(t *testing.T) {
	t.Parallel()

	stub := &stubSendClient{
		resp: &rest.Response{
			StatusCode: 202,
			Headers:    map[string][]string{"X-Message-Id": {"msg-123"}},
		},
	}

	n := NewSendGridNotifier("key", "alerts@dealdrop.dev", "DealDrop", WithSendClient(stub))
	receipt, err := n.SendPriceDrop(context.Background(), testAlert())
	require.NoError(t, err)
	assert.Equal(t, "msg-123", receipt.ProviderMessageID)

	require.NotNil(t, stub.sent)
	assert.Equal(t, "alerts@dealdrop.dev", stub.sent.From.Address)
	assert.Contains(t, stub.sent.Subject, "Anker USB-C Hub")
	assert.Contains(t, stub.sent.Subject, "34.99")

	require.Len(t, stub.sent.Personalizations, 1)
	require.Len(t, stub.sent.Personalizations[0].To, 1)
	assert.Equal(t, "buyer@example.com", stub.sent.Personalizations[0].To[0].Address)

	require.Len(t, stub.sent.Content, 2)
	assert.Contains(t, stub.sent.Content[0].Value, "dropped from $49.99 to $34.99")
	assert.Contains(t, stub.sent.Content[0].Value, "30% off")
	assert.Contains(t, stub.sent.Content[1].Value, "<strong>$34.99</strong>")
	assert.Contains(t, stub.sent.Content[1].Value, "images/I/test.jpg")
}

func TestSendGridNotifier_SendPriceDrop_NoImage(t *testing.T) {
	t.Parallel()

	stub := &stubSendClient{resp: &rest.Response{StatusCode: 202}}
	alert := testAlert()
	alert.ImageURL = ""

	n := NewSendGridNotifier("key", "alerts@dealdrop.dev", "DealDrop", WithSendClient(stub))
	receipt, err := n.SendPriceDrop(context.Background(), alert)
	require.NoError(t, err)
	assert.Empty(t, receipt.ProviderMessageID)
	assert.NotContains(t, stub.sent.Content[1].Value, "<img")
}

func TestSendGridNotifier_SendPriceDrop_APIError(t *testing.T) {
	t.Parallel()

	stub := &stubSendClient{
		resp: &rest.Response{StatusCode: 401, Body: `{"errors":[{"message":"bad key"}]}`},
	}

	n := NewSendGridNotifier("key", "alerts@dealdrop.dev", "DealDrop", WithSendClient(stub))
	_, err := n.SendPriceDrop(context.Background(), testAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sendgrid returned 401")
}

func TestSendGridNotifier_SendPriceDrop_TransportError(t *testing.T) {
	t.Parallel()

	stub := &stubSendClient{err: errors.New("connection refused")}

	n := NewSendGridNotifier("key", "alerts@dealdrop.dev", "DealDrop", WithSendClient(stub))
	_, err := n.SendPriceDrop(context.Background(), testAlert())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending via sendgrid")
}

func TestAlert_DropPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		oldPrice decimal.Decimal
		newPrice decimal.Decimal
		want     string
	}{
		{
			name:     "thirty percent drop",
			oldPrice: decimal.NewFromFloat(49.99),
			newPrice: decimal.NewFromFloat(34.99),
			want:     "30",
		},
		{
			name:     "fractional drop rounds to one place",
			oldPrice: decimal.NewFromFloat(29.99),
			newPrice: decimal.NewFromFloat(24.50),
			want:     "18.3",
		},
		{
			name:     "zero old price yields zero",
			oldPrice: decimal.Zero,
			newPrice: decimal.NewFromFloat(10),
			want:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := &Alert{OldPrice: tt.oldPrice, NewPrice: tt.newPrice}
			assert.Equal(t, tt.want, a.DropPercent().String())
		})
	}
}

// compile-time interface check.
var _ Notifier = (*SendGridNotifier)(nil)
