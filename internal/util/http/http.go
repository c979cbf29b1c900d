// Package http provides HTTP utilities for fetching remote resources.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmylchreest/triad/internal/version"
)

const (
	// UserAgentName is the application name used in the User-Agent header.
	UserAgentName = "triad"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 10 * time.Second
)

// ErrBodyTooLarge is returned when a response body exceeds FetchOptions.MaxBytes.
var ErrBodyTooLarge = errors.New("response body too large")

// FetchOptions configures HTTP fetch behavior.
type FetchOptions struct {
	// Timeout specifies the HTTP request timeout.
	// If zero, DefaultTimeout is used.
	Timeout time.Duration

	// Headers specifies additional HTTP headers to send with the request.
	Headers map[string]string

	// MaxBytes caps the response body size. Zero means no limit.
	MaxBytes int64
}

// Fetch retrieves content from a URL with context and timeout support.
// It automatically sets the User-Agent header and handles common HTTP errors.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := &http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", fmt.Sprintf("%s/%s", UserAgentName, version.Version))
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if opts.MaxBytes > 0 && resp.ContentLength > opts.MaxBytes {
		return nil, fmt.Errorf("%w: Content-Length %d exceeds %d", ErrBodyTooLarge, resp.ContentLength, opts.MaxBytes)
	}

	var body io.Reader = resp.Body
	if opts.MaxBytes > 0 {
		// One extra byte distinguishes "exactly at the limit" from "over it".
		body = io.LimitReader(resp.Body, opts.MaxBytes+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if opts.MaxBytes > 0 && int64(len(data)) > opts.MaxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, opts.MaxBytes)
	}

	return data, nil
}
