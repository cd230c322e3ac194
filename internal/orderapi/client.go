// Package orderapi implements the HTTP client for the external order
// service: the authoritative list of orders and tasks, plus per-site
// enrichment lookups.
package orderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/target/phototrack/internal/domain/model"
)

const defaultTimeout = 15 * time.Second

// Options holds the settings for creating a Client.
type Options struct {
	// BaseURL is the root of the order API, without a trailing slash.
	BaseURL string

	// Token is the bearer token sent on every request. Optional.
	Token string

	// Timeout bounds each request when HTTPClient is not supplied.
	Timeout time.Duration

	// HTTPClient overrides the underlying client, for tests.
	HTTPClient *http.Client
}

// Client calls the external order service.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a Client from the given options.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		http:    httpClient,
	}
}

// ListOrders fetches the full order list. Any transport failure or non-2xx
// response is returned as an error; the caller treats it as the source being
// unavailable.
func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var payload []orderPayload
	if err := c.getJSON(ctx, c.baseURL+"/orders", &payload); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(payload))
	for _, p := range payload {
		orders = append(orders, p.toModel())
	}
	return orders, nil
}

// GetSite fetches the enrichment payload for one site. An unknown site
// returns (nil, nil); transport failures return an error. Callers treat both
// as "no payload" and retry on a later lookup.
func (c *Client) GetSite(ctx context.Context, siteID int64) (*model.Site, error) {
	url := fmt.Sprintf("%s/sites/%d", c.baseURL, siteID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build site request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get site %d: %w", siteID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get site %d: unexpected status %d", siteID, resp.StatusCode)
	}

	var payload sitePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode site %d: %w", siteID, err)
	}
	site := payload.toModel()
	return &site, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
