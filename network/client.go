// Package network provides a pre-configured, optimized HTTP client for concurrent parser communication.
package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/picsan-cli/picsan/constant"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// It is configured with increased concurrency limits and a hard timeout: album sources are external,
// possibly slow or hostile, so no upstream call may block indefinitely.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// StatusError reports a non-2xx HTTP status returned by an upstream source.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Get fetches the given URL with the shared client and returns the response body.
// The request carries the default User-Agent and is bound to ctx, so an aborted
// caller cancels the in-flight upstream I/O instead of letting it run to completion.
func Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}
