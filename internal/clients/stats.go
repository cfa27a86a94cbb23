package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethanolivertroy/bundle-checker/internal/cache"
)

// maxReportBytes bounds the size of a downloaded report
const maxReportBytes = 256 << 20

// IsRemote returns true if source is an http(s) URL
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// StatsClient downloads compilation reports published by earlier CI steps
type StatsClient struct {
	httpClient *http.Client
	cache      *cache.Cache
}

// NewStatsClient creates a new stats client; c may be nil to disable caching
func NewStatsClient(c *cache.Cache, timeout time.Duration) *StatsClient {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &StatsClient{
		httpClient: &http.Client{Timeout: timeout},
		cache:      c,
	}
}

// Fetch returns the report body at url, from cache when possible
func (c *StatsClient) Fetch(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(url); ok {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxReportBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxReportBytes {
		return nil, fmt.Errorf("stats exceed %d bytes", maxReportBytes)
	}

	// A failed cache write only costs a download next time
	if c.cache != nil {
		_ = c.cache.Set(url, data)
	}

	return data, nil
}
