// Package pharmacies implements the client for the upstream diabetes
// screening pharmacy directory. Each call issues exactly one request; there
// is no caching, retry or deduplication.
package pharmacies

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Pharmacy mirrors one record returned by the upstream directory. Records
// are consumed read-only and passed through to the browser.
type Pharmacy struct {
	NameLatin     string  `json:"pharmacyNameLatin"`
	NameArabic    string  `json:"pharmacyNameArabic"`
	CityCode      string  `json:"cityCode"`
	Phone         string  `json:"pharmacyPhone"`
	AddressLatin  string  `json:"addressLatin"`
	AddressArabic string  `json:"addressArabic"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// UpstreamError reports a non-2xx response from the upstream API. Only the
// status code is carried; upstream bodies are never propagated.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// Client queries the upstream pharmacy API with the server-side credential.
type Client struct {
	http   *resty.Client
	apiKey string
}

// NewClient builds a client for the given base URL. The timeout bounds every
// upstream call so the proxy cannot hang on a stalled upstream.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   httpClient,
		apiKey: apiKey,
	}
}

// HasCredential reports whether an API key is configured.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

// ListPharmacies fetches the pharmacies for a city code, in upstream order.
func (c *Client) ListPharmacies(ctx context.Context, cityCode string) ([]Pharmacy, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-api-key", c.apiKey).
		SetQueryParam("city", cityCode).
		Get("/get-pharmacies")
	if err != nil {
		return nil, fmt.Errorf("pharmacy request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &UpstreamError{StatusCode: resp.StatusCode()}
	}

	var list []Pharmacy
	if err := json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, fmt.Errorf("decoding pharmacy response: %w", err)
	}

	return list, nil
}

// Ping checks network-level reachability of the upstream host. Any HTTP
// response counts as reachable; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.http.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		return fmt.Errorf("upstream unreachable: %w", err)
	}
	return nil
}
