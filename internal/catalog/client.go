// Package catalog provides an Amazon Product Advertising API client
// abstracted behind interfaces for testability.
package catalog

import (
	"context"
	"errors"

	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// ErrNotFound is returned when the catalog has no purchasable offer for an
// ASIN. The item may be delisted, out of stock, or region-restricted.
var ErrNotFound = errors.New("item not found in catalog")

// Client defines the interface for fetching product snapshots.
type Client interface {
	GetItem(ctx context.Context, asin string) (*domain.ProductSnapshot, error)
}
