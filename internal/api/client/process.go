package client

import "context"

// ProcessResult summarizes a processing run triggered via the API.
type ProcessResult struct {
	RunID      string         `json:"run_id"`
	AlertsSent int            `json:"alerts_sent"`
	ErrorCount int            `json:"error_count"`
	Errors     []ProcessError `json:"errors,omitempty"`
}

// ProcessError describes a single tracker failure within a run.
type ProcessError struct {
	TrackerID string `json:"tracker_id"`
	Stage     string `json:"stage"`
	Error     string `json:"error"`
}

// TriggerProcess starts a processing run and waits for it to complete.
func (c *Client) TriggerProcess(ctx context.Context) (*ProcessResult, error) {
	var result ProcessResult
	if err := c.post(ctx, "/api/v1/process", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
