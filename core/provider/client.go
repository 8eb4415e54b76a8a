package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the HTTP implementation of Lister for one resource kind.
// The provider API follows a plain paginated-listing shape:
//
//	GET {base}/v1/{kind}?region=...&account=...&cursor=...&limit=...
//	-> {"records": [...], "nextCursor": "..."}
//
// Listing the same cursor twice returns the same page, which makes the call
// safe to repeat when a cycle is retried.
type Client struct {
	cfg  Config
	kind string
	http *http.Client
}

// NewClient creates a provider API client scoped to a single resource kind.
func NewClient(cfg Config, kind string) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Same strict transport settings as the storage client: an unreachable
	// provider must fail the cycle, not hang it.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		cfg:  cfg,
		kind: kind,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

// Kind returns the resource kind this client lists.
func (c *Client) Kind() string {
	return c.kind
}

// apiKey resolves the credential for a request: an owner-scoped key on the
// scope wins over the configured one.
func (c *Client) apiKey(scope Scope) string {
	if scope.OwnerAuth != "" {
		return scope.OwnerAuth
	}
	return c.cfg.ApiKey
}

// ListPage implements Lister against the provider inventory API.
func (c *Client) ListPage(ctx context.Context, scope Scope, cursor string) (Page, error) {
	base := strings.TrimSuffix(c.cfg.BaseURL, "/")

	q := url.Values{}
	if scope.Region != "" {
		q.Set("region", scope.Region)
	}
	if scope.Account != "" {
		q.Set("account", scope.Account)
	}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if c.cfg.PageSize > 0 {
		q.Set("limit", strconv.Itoa(c.cfg.PageSize))
	}

	endpoint := fmt.Sprintf("%s/v1/%s?%s", base, c.kind, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Page{}, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if key := c.apiKey(scope); key != "" {
		req.Header.Set("X-Api-Key", key)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("provider %s listing failed: %w", c.kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a bounded amount of the body for error detail
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Page{}, fmt.Errorf("provider %s listing returned %d: %s",
			c.kind, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return Page{}, fmt.Errorf("failed to decode provider %s page: %w", c.kind, err)
	}

	return page, nil
}
