// Package priceclient is an HTTP-backed priceapi.PriceOracle implementation:
// a configurable base URL/user agent/http.Client, one makeRequest helper,
// JSON decoding into a typed result, and go.uber.org/ratelimit for
// client-side request pacing.
package priceclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/ratelimit"

	"github.com/commanderforge/commanderforge/priceapi"
)

const (
	DefaultBaseURL   = "https://api.example-price-oracle.test"
	DefaultUserAgent = "CommanderForgePriceClient/1.0"

	// requestsPerSecond bounds outbound calls to the price oracle.
	requestsPerSecond = 10
)

// Client is a rate-limited HTTP priceapi.PriceOracle.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   ratelimit.Limiter
}

// Options configures a Client. A zero-value Options yields the defaults.
type Options struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	PerSecond  int
}

// New builds a Client from opts, filling unset fields with defaults.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.PerSecond == 0 {
		opts.PerSecond = requestsPerSecond
	}
	return &Client{
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		http:      opts.HTTPClient,
		limiter:   ratelimit.New(opts.PerSecond),
	}
}

type priceResponse struct {
	Name      string `json:"name"`
	PriceUSD  string `json:"price_usd"`
	Available bool   `json:"available"`
}

// Lookup implements priceapi.PriceOracle.
func (c *Client) Lookup(ctx context.Context, name string) (priceapi.PriceResult, error) {
	c.limiter.Take()

	endpoint := c.baseURL + "/cards/" + url.QueryEscape(name) + "/price"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return priceapi.PriceResult{}, fmt.Errorf("priceclient: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return priceapi.PriceResult{}, fmt.Errorf("priceclient: request %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return priceapi.PriceResult{Known: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return priceapi.PriceResult{}, fmt.Errorf("priceclient: %q returned status %d", name, resp.StatusCode)
	}

	var body priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return priceapi.PriceResult{}, fmt.Errorf("priceclient: decode response for %q: %w", name, err)
	}
	if !body.Available {
		return priceapi.PriceResult{Known: false}, nil
	}

	cents, err := parseDollarsToCents(body.PriceUSD)
	if err != nil {
		return priceapi.PriceResult{}, fmt.Errorf("priceclient: parse price for %q: %w", name, err)
	}
	return priceapi.PriceResult{Price: priceapi.Money(cents), Known: true}, nil
}
