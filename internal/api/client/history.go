package client

import (
	"context"
	"fmt"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// GetHistory returns observed price points for an ASIN, newest first.
func (c *Client) GetHistory(ctx context.Context, asin string, limit int) ([]domain.PricePoint, error) {
	path := "/api/v1/history/" + asin
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var points []domain.PricePoint
	if err := c.get(ctx, path, &points); err != nil {
		return nil, err
	}
	return points, nil
}
