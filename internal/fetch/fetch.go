// Package fetch retrieves raw CSV text from a spreadsheet export URL with
// bounded retries, and caches the last successful pipeline result.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"worklog-report/internal/config"
	"worklog-report/internal/observability"
)

// Client fetches CSV text over HTTP. Network failures, 5xx responses and
// 429 are retried with exponential backoff up to the configured budget;
// other 4xx responses are client errors and fail immediately.
type Client struct {
	httpClient  *http.Client
	retries     int
	backoffBase time.Duration
}

// NewClient builds a fetch client from configuration.
func NewClient(cfg config.FetchConfig) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		retries:     cfg.Retries,
		backoffBase: cfg.BackoffBase,
	}
}

// ResolveSourceURL turns a source identifier into a CSV export URL. Full
// URLs pass through; anything else is treated as a Google spreadsheet ID.
func ResolveSourceURL(source string) string {
	if strings.HasPrefix(source, "http") {
		return source
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=0", source)
}

// FetchCSV retrieves the CSV body at url. It returns an error only after
// the retry budget is exhausted or a non-retryable client error occurs.
func (c *Client) FetchCSV(ctx context.Context, url string) (string, error) {
	backoff := c.backoffBase
	var lastErr error

	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			log.Printf("Fetch failed, retrying in %s... (%d attempts left): %v",
				backoff, c.retries-attempt+1, lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				observability.RecordFetchFailure()
				return "", ctx.Err()
			}
			backoff *= 2
		}

		body, retryable, err := c.attempt(ctx, url)
		if err == nil {
			return body, nil
		}
		if !retryable {
			observability.RecordFetchFailure()
			return "", err
		}
		lastErr = err
	}

	observability.RecordFetchFailure()
	return "", fmt.Errorf("network error after retries: %w", lastErr)
}

// attempt performs a single request. The second return value reports
// whether the failure is worth retrying.
func (c *Client) attempt(ctx context.Context, url string) (string, bool, error) {
	observability.RecordFetchAttempt()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		return "", retryable, fmt.Errorf("failed to fetch CSV: HTTP %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), false, nil
}
