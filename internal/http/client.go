package http

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const userAgent = "bikeshare-explorer"

// Retry controls how often a failed fetch is attempted again and how long to
// wait in between. The wait before attempt n+1 is Cooldown * Exponent^n.
type Retry struct {
	MaxAttempts int
	Cooldown    time.Duration
	Exponent    float64
}

// Delay returns the wait after the given zero-based failed attempt.
func (r Retry) Delay(attempt int) time.Duration {
	return time.Duration(float64(r.Cooldown) * math.Pow(r.Exponent, float64(attempt)))
}

// Client fetches dataset files over HTTP.
//
// Example usage:
//
//	client := NewClient()
//	n, err := client.Fetch(ctx, "https://mirror.example.com/chicago.csv", "data/chicago.csv")
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client with a 60 second timeout per request.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Fetch downloads url to destPath and returns the number of bytes written.
//
// The body is streamed into a temporary file in the destination directory and
// renamed into place once complete. A failed fetch leaves nothing behind.
func (c *Client) Fetch(ctx context.Context, url, destPath string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), filepath.Base(destPath)+".part-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}
	if resp.ContentLength >= 0 && n != resp.ContentLength {
		return 0, fmt.Errorf("short body: got %d of %d bytes", n, resp.ContentLength)
	}

	return n, os.Rename(tmp.Name(), destPath)
}

// FetchWithRetry calls Fetch until it succeeds, the attempts in r run out or
// ctx is done. onFailure, if set, sees every failed attempt (zero-based).
// The last error is returned.
func (c *Client) FetchWithRetry(ctx context.Context, url, destPath string, r Retry, onFailure func(attempt int, err error)) (int64, error) {
	attempts := max(r.MaxAttempts, 1)
	var err error
	for attempt := range attempts {
		var n int64
		n, err = c.Fetch(ctx, url, destPath)
		if err == nil {
			return n, nil
		}
		if onFailure != nil {
			onFailure(attempt, err)
		}
		if attempt == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(r.Delay(attempt)):
		}
	}
	return 0, err
}
