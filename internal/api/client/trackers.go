package client

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// trackerRequest contains only the fields the API accepts for create/update.
type trackerRequest struct {
	Recipient        string           `json:"recipient,omitempty"`
	ASIN             string           `json:"asin,omitempty"`
	ProductURL       string           `json:"product_url,omitempty"`
	AlertMode        domain.AlertMode `json:"alert_mode,omitempty"`
	TargetPrice      *decimal.Decimal `json:"target_price,omitempty"`
	PercentThreshold *decimal.Decimal `json:"percent_threshold,omitempty"`
	CooldownHours    int              `json:"cooldown_hours,omitempty"`
	Enabled          *bool            `json:"enabled,omitempty"`
}

// ListTrackers returns all trackers, optionally only enabled ones.
func (c *Client) ListTrackers(ctx context.Context, enabledOnly bool) ([]domain.Tracker, error) {
	path := "/api/v1/trackers"
	if enabledOnly {
		path += "?enabled=true"
	}
	var trackers []domain.Tracker
	if err := c.get(ctx, path, &trackers); err != nil {
		return nil, err
	}
	return trackers, nil
}

// GetTracker returns a single tracker by ID.
func (c *Client) GetTracker(ctx context.Context, id string) (*domain.Tracker, error) {
	var t domain.Tracker
	if err := c.get(ctx, "/api/v1/trackers/"+id, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTracker creates a new tracker. productURL may be a full Amazon
// product URL; the server reduces it to an ASIN.
func (c *Client) CreateTracker(ctx context.Context, t *domain.Tracker, productURL string) (*domain.Tracker, error) {
	var created domain.Tracker
	req := trackerRequest{
		Recipient:        t.Recipient,
		ASIN:             t.ASIN,
		ProductURL:       productURL,
		AlertMode:        t.AlertMode,
		TargetPrice:      t.TargetPrice,
		PercentThreshold: t.PercentThreshold,
		CooldownHours:    t.CooldownHours,
		Enabled:          &t.Enabled,
	}
	if err := c.post(ctx, "/api/v1/trackers", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTracker updates an existing tracker.
func (c *Client) UpdateTracker(ctx context.Context, t *domain.Tracker) (*domain.Tracker, error) {
	var updated domain.Tracker
	req := trackerRequest{
		Recipient:        t.Recipient,
		ASIN:             t.ASIN,
		AlertMode:        t.AlertMode,
		TargetPrice:      t.TargetPrice,
		PercentThreshold: t.PercentThreshold,
		CooldownHours:    t.CooldownHours,
		Enabled:          &t.Enabled,
	}
	if err := c.put(ctx, "/api/v1/trackers/"+t.ID, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetTrackerEnabled enables or disables a tracker.
func (c *Client) SetTrackerEnabled(ctx context.Context, id string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	return c.put(ctx, fmt.Sprintf("/api/v1/trackers/%s/enabled", id), body, nil)
}

// DeleteTracker deletes a tracker by ID.
func (c *Client) DeleteTracker(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/trackers/"+id, nil)
}
