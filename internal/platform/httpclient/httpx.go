// Package httpclient provides a thin HTTP client tuned for endpoint probing.
// It maps transport failures and status codes onto the platform error
// sentinels so callers can classify verdicts without touching net/http.
// Retry policy lives in the scheduler, not here: a probe is attempted once.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"docsweep/internal/platform/errors"
	"docsweep/internal/platform/logx"
)

// Client wraps http.Client with probe-oriented defaults.
type Client struct {
	httpClient *http.Client
	logger     logx.Logger
	config     Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the per-request timeout duration.
	// Default: 30 seconds
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: "docsweep/1.0"
	UserAgent string

	// FollowRedirects controls whether 3xx responses are followed.
	// Default: true
	FollowRedirects bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		UserAgent:       "docsweep/1.0",
		FollowRedirects: true,
	}
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "docsweep/1.0"
	}

	httpClient := &http.Client{Timeout: config.Timeout}
	if !config.FollowRedirects {
		httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger.With("component", "httpx"),
		config:     config,
	}
}

// Get performs a single GET request. Transport-level failures are mapped
// onto the platform sentinels (ErrTimeout, ErrConnectionFailed) so callers
// can classify them as transient.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s", url)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	c.logger.Debug("HTTP request", "url", url)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Debug("HTTP request failed",
			"url", url,
			"error", err.Error(),
			"duration_ms", duration.Milliseconds(),
		)
		return nil, mapTransportError(ctx, err)
	}

	c.logger.Debug("HTTP response received",
		"url", url,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)
	return resp, nil
}

// mapTransportError translates a net/http error into a platform sentinel.
func mapTransportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	type timeouter interface{ Timeout() bool }
	var te timeouter
	if errors.As(err, &te) && te.Timeout() {
		return errors.Wrap(errors.ErrTimeout, err.Error())
	}
	return errors.Wrap(errors.ErrConnectionFailed, err.Error())
}

// CheckStatus validates the HTTP status code and returns a sentinel error
// when it is not successful: 404 is a terminal not-found verdict, 401/403 a
// terminal access-denied verdict, 429 and 5xx outages are transient.
func CheckStatus(resp *http.Response) error {
	if resp == nil {
		return errors.New("response is nil")
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return errors.ErrRateLimit
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.ErrAccessDenied
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
		return errors.ErrServiceUnavailable
	default:
		return errors.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
}

// ReadBody reads the response body and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	return body, nil
}

// Fetch performs a GET request, validates the status and returns the body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	if err := CheckStatus(resp); err != nil {
		resp.Body.Close()
		return nil, errors.Wrapf(err, "request to %s failed", url)
	}
	return ReadBody(resp)
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, user_agent=%s}", c.config.Timeout, c.config.UserAgent)
}
