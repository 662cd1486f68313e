package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dealdrop/dealdrop/internal/metrics"
	domain "github.com/dealdrop/dealdrop/pkg/types"
)

var tracer = otel.Tracer("github.com/dealdrop/dealdrop/internal/catalog")

const (
	defaultHost        = "webservices.amazon.com"
	defaultRegion      = "us-east-1"
	defaultMarketplace = "www.amazon.com"

	getItemsPath   = "/paapi5/getitems"
	getItemsTarget = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.GetItems"
)

// itemResources lists the PA-API response fields we ask for. Anything not
// listed here comes back empty.
var itemResources = []string{
	"ItemInfo.Title",
	"Images.Primary.Large",
	"Offers.Listings.Price",
	"Offers.Listings.SavingBasis",
}

// PAAPIClient implements Client using the Product Advertising API 5.0
// GetItems operation.
type PAAPIClient struct {
	accessKey   string
	secretKey   string
	partnerTag  string
	host        string
	region      string
	marketplace string
	client      *http.Client
	rateLimiter *RateLimiter
	nowFunc     func() time.Time
}

// PAAPIOption configures the PAAPIClient.
type PAAPIOption func(*PAAPIClient)

// WithHost overrides the default API host (per-marketplace endpoints).
func WithHost(h string) PAAPIOption {
	return func(c *PAAPIClient) {
		c.host = h
	}
}

// WithRegion overrides the default signing region.
func WithRegion(r string) PAAPIOption {
	return func(c *PAAPIClient) {
		c.region = r
	}
}

// WithMarketplace overrides the default marketplace.
func WithMarketplace(m string) PAAPIOption {
	return func(c *PAAPIClient) {
		c.marketplace = m
	}
}

// WithPAAPIHTTPClient overrides the default HTTP client.
func WithPAAPIHTTPClient(hc *http.Client) PAAPIOption {
	return func(c *PAAPIClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every GetItem() call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) PAAPIOption {
	return func(c *PAAPIClient) {
		c.rateLimiter = r
	}
}

// WithNowFunc overrides the time source used for request signing. Tests use
// it to produce deterministic signatures.
func WithNowFunc(f func() time.Time) PAAPIOption {
	return func(c *PAAPIClient) {
		c.nowFunc = f
	}
}

// NewPAAPIClient creates a new Product Advertising API client.
func NewPAAPIClient(accessKey, secretKey, partnerTag string, opts ...PAAPIOption) *PAAPIClient {
	c := &PAAPIClient{
		accessKey:   accessKey,
		secretKey:   secretKey,
		partnerTag:  partnerTag,
		host:        defaultHost,
		region:      defaultRegion,
		marketplace: defaultMarketplace,
		client:      &http.Client{Timeout: 10 * time.Second},
		nowFunc:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type getItemsRequest struct {
	ItemIds     []string `json:"ItemIds"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace"`
	Resources   []string `json:"Resources"`
}

type getItemsResponse struct {
	ItemsResult struct {
		Items []paapiItem `json:"Items"`
	} `json:"ItemsResult"`
	Errors []paapiError `json:"Errors"`
}

type paapiItem struct {
	ASIN          string `json:"ASIN"`
	DetailPageURL string `json:"DetailPageURL"`
	ItemInfo      struct {
		Title struct {
			DisplayValue string `json:"DisplayValue"`
		} `json:"Title"`
	} `json:"ItemInfo"`
	Images struct {
		Primary struct {
			Large struct {
				URL string `json:"URL"`
			} `json:"Large"`
		} `json:"Primary"`
	} `json:"Images"`
	Offers struct {
		Listings []struct {
			Price struct {
				Amount float64 `json:"Amount"`
			} `json:"Price"`
			SavingBasis *struct {
				Amount float64 `json:"Amount"`
			} `json:"SavingBasis"`
		} `json:"Listings"`
	} `json:"Offers"`
}

type paapiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

// GetItem implements Client.GetItem via the GetItems operation.
func (c *PAAPIClient) GetItem(
	ctx context.Context,
	asin string,
) (*domain.ProductSnapshot, error) {
	if !ValidASIN(asin) {
		return nil, fmt.Errorf("invalid ASIN %q", asin)
	}

	ctx, span := tracer.Start(ctx, "catalog.GetItem")
	span.SetAttributes(attribute.String("asin", asin))
	defer span.End()

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.CatalogDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.CatalogCallsTotal.Inc()
		metrics.CatalogDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	body, err := json.Marshal(getItemsRequest{
		ItemIds:     []string{asin},
		PartnerTag:  c.partnerTag,
		PartnerType: "Associates",
		Marketplace: c.marketplace,
		Resources:   itemResources,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	now := c.nowFunc().UTC()

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		"https://"+c.host+getItemsPath,
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json; charset=utf-8")
	httpReq.Header.Set("Content-Encoding", "amz-1.0")
	httpReq.Header.Set("X-Amz-Target", getItemsTarget)
	httpReq.Header.Set("X-Amz-Date", now.Format(amzDateFormat))
	httpReq.Header.Set("Host", c.host)

	auth := signRequest(signingInput{
		AccessKey: c.accessKey,
		SecretKey: c.secretKey,
		Region:    c.region,
		Host:      c.host,
		Path:      getItemsPath,
		Target:    getItemsTarget,
		Payload:   body,
		Now:       now,
	})
	httpReq.Header.Set("Authorization", auth)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing GetItems request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	// PA-API reports item-level errors with a 200 as well as via 4xx, so
	// parse the body in both cases before deciding.
	var apiResp getItemsResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("PA-API error (status %d): %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("parsing GetItems response: %w", err)
	}

	if len(apiResp.ItemsResult.Items) == 0 {
		for _, e := range apiResp.Errors {
			if e.Code == "ItemNotAccessible" || e.Code == "InvalidParameterValue" {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, e.Message)
			}
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("PA-API error (status %d): %s", resp.StatusCode, string(respBody))
		}
		return nil, ErrNotFound
	}

	return toSnapshot(&apiResp.ItemsResult.Items[0], now)
}

// toSnapshot converts a PA-API item into a ProductSnapshot, rejecting items
// without a purchasable offer.
func toSnapshot(item *paapiItem, fetchedAt time.Time) (*domain.ProductSnapshot, error) {
	if len(item.Offers.Listings) == 0 {
		return nil, fmt.Errorf("%w: no offer listings for %s", ErrNotFound, item.ASIN)
	}

	listing := item.Offers.Listings[0]
	current := decimal.NewFromFloat(listing.Price.Amount).Round(2)
	if !current.IsPositive() {
		return nil, fmt.Errorf("%w: no usable price for %s", ErrNotFound, item.ASIN)
	}

	snap := &domain.ProductSnapshot{
		ASIN:         item.ASIN,
		Title:        item.ItemInfo.Title.DisplayValue,
		ProductURL:   item.DetailPageURL,
		ImageURL:     item.Images.Primary.Large.URL,
		CurrentPrice: current,
		FetchedAt:    fetchedAt,
	}

	// SavingBasis is the strike-through list price. Only trust it when it
	// is at or above the offer price.
	if listing.SavingBasis != nil {
		original := decimal.NewFromFloat(listing.SavingBasis.Amount).Round(2)
		if original.GreaterThanOrEqual(current) {
			snap.OriginalPrice = &original
		}
	}

	return snap, nil
}
