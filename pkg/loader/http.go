package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPLoader fetches assets over HTTP(S) from a base URL, typically a
// CDN or static file host.
type HTTPLoader struct {
	base   string
	client *http.Client
}

// HTTPOption configures an HTTPLoader.
type HTTPOption func(*HTTPLoader)

// WithHTTPClient replaces the default client (10 second timeout).
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(l *HTTPLoader) {
		l.client = c
	}
}

// NewHTTP creates a loader that resolves paths against base, e.g.
// "https://cdn.example.com/lang".
func NewHTTP(base string, opts ...HTTPOption) *HTTPLoader {
	l := &HTTPLoader{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fetch issues a GET for base/path. A 404 maps to ErrNotFound; any
// other non-2xx status maps to ErrFetchFailed.
func (l *HTTPLoader) Fetch(ctx context.Context, path string) ([]byte, error) {
	url := l.base + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetchFailed, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrFetchFailed, url, err)
	}
	return data, nil
}
