package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdrop/dealdrop/internal/catalog"
	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// countingClient is a stub Client that counts calls.
type countingClient struct {
	calls int
	snap  *domain.ProductSnapshot
	err   error
}

func (c *countingClient) GetItem(_ context.Context, _ string) (*domain.ProductSnapshot, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	snap := *c.snap
	return &snap, nil
}

func testSnapshot() *domain.ProductSnapshot {
	return &domain.ProductSnapshot{
		ASIN:         "B08N5WRWNW",
		Title:        "Echo Dot",
		CurrentPrice: decimal.RequireFromString("29.99"),
		FetchedAt:    time.Now(),
	}
}

func TestCachedClient_SecondCallServedFromCache(t *testing.T) {
	t.Parallel()

	inner := &countingClient{snap: testSnapshot()}
	c := catalog.NewCachedClient(inner, time.Minute)

	first, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.NoError(t, err)

	second, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first.ASIN, second.ASIN)
	assert.NotSame(t, first, second, "cache must hand out copies")
}

func TestCachedClient_ErrorsNotCached(t *testing.T) {
	t.Parallel()

	inner := &countingClient{err: errors.New("throttled")}
	c := catalog.NewCachedClient(inner, time.Minute)

	_, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.Error(t, err)

	inner.err = nil
	inner.snap = testSnapshot()

	_, err = c.GetItem(context.Background(), "B08N5WRWNW")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "failed lookup must retry, not serve a cached error")
}

func TestCachedClient_FlushForcesRefetch(t *testing.T) {
	t.Parallel()

	inner := &countingClient{snap: testSnapshot()}
	c := catalog.NewCachedClient(inner, time.Minute)

	_, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.NoError(t, err)

	c.Flush()

	_, err = c.GetItem(context.Background(), "B08N5WRWNW")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
