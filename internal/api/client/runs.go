package client

import (
	"context"
	"fmt"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// ListRuns returns recent processing runs, newest first.
func (c *Client) ListRuns(ctx context.Context, limit int) ([]domain.JobRun, error) {
	path := "/api/v1/runs"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
