package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/observability"
)

const (
	// DefaultUserAgent is sent with every request. Some image hosts refuse
	// requests without a browser-like agent.
	DefaultUserAgent = "Mozilla/5.0"

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 10 * time.Second

	// MaxBodySize caps the bytes read from a response body.
	MaxBodySize = 20 << 20
)

// Client performs GET requests against image hosts.
type Client struct {
	HTTP      *http.Client
	UserAgent string
	// Service names the caller in observability hooks, e.g. "covers".
	Service string
}

// NewClient returns a Client with the given per-request timeout.
// A zero timeout uses [DefaultTimeout].
func NewClient(service string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: DefaultUserAgent,
		Service:   service,
	}
}

// Get fetches url and returns the response body.
//
// Network failures and 5xx responses are wrapped in [RetryableError].
// A 404 returns an error with code NOT_FOUND; any other non-2xx status
// returns NETWORK_ERROR.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, c.Service, http.MethodGet, url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, bserr.Wrap(bserr.ErrCodeInvalidInput, err, "bad request url %q", url)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		hooks.OnError(ctx, c.Service, http.MethodGet, url, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &RetryableError{Err: bserr.Wrap(bserr.ErrCodeNetwork, err, "fetch %s", url)}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, c.Service, http.MethodGet, url, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, bserr.New(bserr.ErrCodeNotFound, "%s not found", url)
	case resp.StatusCode >= 500:
		return nil, &RetryableError{Err: bserr.New(bserr.ErrCodeNetwork, "fetch %s: status %d", url, resp.StatusCode)}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, bserr.New(bserr.ErrCodeNetwork, "fetch %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("read %s: %w", url, err)}
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
