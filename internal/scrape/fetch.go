package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps one http.Client with the browser-like User-Agent career sites
// expect. Every fetch is a single best-effort GET; there are no retries.
type Client struct {
	hc        *http.Client
	userAgent string
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	return &Client{
		hc:        &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// FetchPage GETs rawURL and returns the body. Non-2xx statuses are errors;
// the caller logs and moves on, so a failing site contributes zero
// candidates.
func (c *Client) FetchPage(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("get %s: status %d", rawURL, res.StatusCode)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}
	return string(b), nil
}
