// Package api implements the client for the CMS provider-data datastore
// query API. Responses are JSON objects carrying a total count and a
// results array; pagination is plain offset/limit.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Record is one raw item from a datastore results array.
type Record = map[string]interface{}

// Page is one fetched batch of results plus the pagination bookkeeping
// that came with it.
type Page struct {
	Results []Record
	Count   int
	Offset  int
}

// queryResponse matches the datastore query API response body.
type queryResponse struct {
	Count   int      `json:"count"`
	Results []Record `json:"results"`
}

// Client is a rate-limited HTTP client for the datastore API. The limiter
// paces page fetches so a full-dataset pull does not hammer the endpoint.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithHTTPClient injects a custom *http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit overrides the default pacing of page fetches.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *Client) { c.rateLimiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// NewClient creates a datastore API client. The default pacing allows two
// requests per second with no burst, matching the half-second pause the
// extraction has always kept between pages.
func NewClient(baseURL string, timeout time.Duration, opts ...ClientOption) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: rate.NewLimiter(rate.Limit(2), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage performs a single GET against the dataset path with the given
// offset and limit. An empty Results slice signals end-of-data.
func (c *Client) FetchPage(ctx context.Context, path string, offset, limit int) (*Page, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("count", "true")

	fullURL := c.baseURL + "/" + strings.TrimPrefix(path, "/") + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: fullURL, Err: err}
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: truncate(string(body), 200)}
	}

	var decoded queryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("malformed JSON body: %v", err)}
	}

	return &Page{
		Results: decoded.Results,
		Count:   decoded.Count,
		Offset:  offset,
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
