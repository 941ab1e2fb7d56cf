package eventor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
	"github.com/custodia-labs/eventor-calendars/internal/core/ports/driven"
	"github.com/custodia-labs/eventor-calendars/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.CalendarSource = (*Client)(nil)

// Client fetches calendar exports over HTTP.
type Client struct {
	baseURL     *url.URL
	userAgent   string
	http        *http.Client
	rateLimiter *RateLimiter
}

// Config configures a Client.
type Config struct {
	// BaseURL is the export endpoint. Defaults to domain.DefaultBaseURL.
	BaseURL string

	// UserAgent is sent with every request when set.
	UserAgent string

	// RequestsPerSecond paces requests. Zero disables pacing.
	RequestsPerSecond float64

	// Timeout bounds each request including the body. Zero means none.
	Timeout time.Duration

	// HTTPClient overrides the underlying client. Timeout is ignored if set.
	HTTPClient *http.Client
}

// NewClient creates an export client.
func NewClient(cfg Config) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = domain.DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: base URL must be http or https: %s", domain.ErrInvalidInput, base)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:     u,
		userAgent:   cfg.UserAgent,
		http:        hc,
		rateLimiter: NewRateLimiter(cfg.RequestsPerSecond),
	}, nil
}

// URL returns the request URL for query.
func (c *Client) URL(query domain.Query) string {
	u := *c.baseURL
	u.RawQuery = query.Values().Encode()
	return u.String()
}

// Fetch downloads the calendar for query and copies the body to w.
func (c *Client) Fetch(ctx context.Context, query domain.Query, w io.Writer) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	target := c.URL(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: target}
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	logger.Debug("GET %s: %d bytes in %s", target, n, time.Since(start).Round(time.Millisecond))
	return nil
}
