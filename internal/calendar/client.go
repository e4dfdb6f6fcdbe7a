package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single feed download.
const DefaultTimeout = 30 * time.Second

// Client downloads ICS feeds over HTTP.
type Client struct {
	http *http.Client
}

// NewClient returns a Client with the default timeout.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: DefaultTimeout}}
}

// NewClientWithHTTP returns a Client backed by the given http.Client, which
// tests use to point at a local server.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{http: hc}
}

// Fetch downloads the feed at url and returns its body. The caller closes
// the reader. A non-200 response is an error.
func (c *Client) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build calendar request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch calendar: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch calendar: %s returned %s", url, resp.Status)
	}
	return resp.Body, nil
}

// Download fetches the feed and returns the shaped events inside the window.
func (c *Client) Download(ctx context.Context, url string, w Window) ([]Event, error) {
	body, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return Parse(body, w)
}
