package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const userAgent = "FilingWatcher/1.0"

// maxBodyBytes caps how much of a feed response is read; government bulletin
// pages are small and anything larger is not a feed.
const maxBodyBytes = 10 << 20

// Config holds feed client configuration.
type Config struct {
	Timeout time.Duration
}

// Client fetches raw feed content over HTTP. It performs no retries: a failed
// fetch is reported to the orchestrator, which records it and moves on, and
// the external scheduler re-invokes the whole pass later.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a feed client with a bounded per-request timeout.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch retrieves the feed body as text. Non-2xx responses are errors.
func (c *Client) Fetch(ctx context.Context, feedURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html, application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	c.logger.Debug("fetched feed", "url", feedURL, "bytes", len(body))

	return string(body), nil
}
