package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getItemsOK = `{
	"ItemsResult": {
		"Items": [{
			"ASIN": "B08N5WRWNW",
			"DetailPageURL": "https://www.amazon.com/dp/B08N5WRWNW",
			"ItemInfo": {"Title": {"DisplayValue": "Echo Dot (4th Gen)"}},
			"Images": {"Primary": {"Large": {"URL": "https://m.media-amazon.com/images/I/echo.jpg"}}},
			"Offers": {"Listings": [{
				"Price": {"Amount": 29.99},
				"SavingBasis": {"Amount": 49.99}
			}]}
		}]
	}
}`

const getItemsNotAccessible = `{
	"ItemsResult": {"Items": []},
	"Errors": [{"Code": "ItemNotAccessible", "Message": "The ItemId B000000000 is not accessible"}]
}`

// newTestClient returns a PAAPIClient pointed at a stub server. The stub's
// host is plugged in via WithHost so request signing still works, but the
// transport rewrites to plain HTTP.
func newTestClient(t *testing.T, handler http.HandlerFunc) *PAAPIClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	host := strings.TrimPrefix(srv.URL, "http://")

	return NewPAAPIClient(
		"AKTEST", "sekrit", "dealdrop-20",
		WithHost(host),
		WithPAAPIHTTPClient(&http.Client{
			Transport: &httpRewriteTransport{},
		}),
		WithNowFunc(func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}),
	)
}

// httpRewriteTransport downgrades https requests to http for httptest servers.
type httpRewriteTransport struct{}

func (t *httpRewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	return http.DefaultTransport.RoundTrip(req)
}

func TestGetItem_Success(t *testing.T) {
	t.Parallel()

	var gotReq getItemsRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, getItemsPath, r.URL.Path)
		assert.Equal(t, getItemsTarget, r.Header.Get("X-Amz-Target"))
		assert.Equal(t, "amz-1.0", r.Header.Get("Content-Encoding"))
		assert.Contains(t, r.Header.Get("Authorization"), "AWS4-HMAC-SHA256 Credential=AKTEST/")
		assert.Contains(t, r.Header.Get("Authorization"), "SignedHeaders=content-encoding;host;x-amz-date;x-amz-target")

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(getItemsOK))
	})

	snap, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.NoError(t, err)

	assert.Equal(t, []string{"B08N5WRWNW"}, gotReq.ItemIds)
	assert.Equal(t, "dealdrop-20", gotReq.PartnerTag)
	assert.Equal(t, "Associates", gotReq.PartnerType)

	assert.Equal(t, "B08N5WRWNW", snap.ASIN)
	assert.Equal(t, "Echo Dot (4th Gen)", snap.Title)
	assert.True(t, snap.CurrentPrice.Equal(decimal.RequireFromString("29.99")))
	require.NotNil(t, snap.OriginalPrice)
	assert.True(t, snap.OriginalPrice.Equal(decimal.RequireFromString("49.99")))
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), snap.FetchedAt)
}

func TestGetItem_NotAccessible(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(getItemsNotAccessible))
	})

	_, err := c.GetItem(context.Background(), "B000000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetItem_NoOffers(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ItemsResult": {"Items": [{
				"ASIN": "B08N5WRWNW",
				"ItemInfo": {"Title": {"DisplayValue": "Out of stock"}},
				"Offers": {"Listings": []}
			}]}
		}`))
	})

	_, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetItem_SavingBasisBelowPriceIgnored(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ItemsResult": {"Items": [{
				"ASIN": "B08N5WRWNW",
				"ItemInfo": {"Title": {"DisplayValue": "Oddly priced"}},
				"Offers": {"Listings": [{
					"Price": {"Amount": 30.00},
					"SavingBasis": {"Amount": 20.00}
				}]}
			}]}
		}`))
	})

	snap, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.NoError(t, err)
	assert.Nil(t, snap.OriginalPrice, "a saving basis below the offer price is not a baseline")
}

func TestGetItem_ServerError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	_, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGetItem_InvalidASIN(t *testing.T) {
	t.Parallel()

	c := NewPAAPIClient("AKTEST", "sekrit", "dealdrop-20")

	_, err := c.GetItem(context.Background(), "not-an-asin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ASIN")
}

func TestGetItem_DailyLimit(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(getItemsOK))
	})
	WithRateLimiter(NewRateLimiter(100, 10, 1))(c)

	_, err := c.GetItem(context.Background(), "B08N5WRWNW")
	require.NoError(t, err)

	_, err = c.GetItem(context.Background(), "B08N5WRWNW")
	require.ErrorIs(t, err, ErrDailyLimitReached)
}

func TestSignRequest_Deterministic(t *testing.T) {
	t.Parallel()

	in := signingInput{
		AccessKey: "AKTEST",
		SecretKey: "sekrit",
		Region:    "us-east-1",
		Host:      "webservices.amazon.com",
		Path:      getItemsPath,
		Target:    getItemsTarget,
		Payload:   []byte(`{"ItemIds":["B08N5WRWNW"]}`),
		Now:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	first := signRequest(in)
	second := signRequest(in)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Credential=AKTEST/20250601/us-east-1/ProductAdvertisingAPI/aws4_request")

	// A different payload must change the signature.
	in.Payload = []byte(`{"ItemIds":["B000000000"]}`)
	assert.NotEqual(t, first, signRequest(in))
}
