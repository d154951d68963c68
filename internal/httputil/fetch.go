// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/site-search/pkg/types"
)

// ErrUpstream matches any *UpstreamError via errors.Is.
var ErrUpstream = errors.New("upstream error")

// maxErrorBody caps how much of a failed response body is kept on the error.
const maxErrorBody = 512

// UpstreamError reports a response whose status was not 2xx.
type UpstreamError struct {
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GET %s: HTTP %d %s", e.URL, e.StatusCode, e.Status)
	}
	return fmt.Sprintf("GET %s: HTTP %d %s: %s", e.URL, e.StatusCode, e.Status, e.Body)
}

// Is lets errors.Is(err, ErrUpstream) match.
func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// NewClient returns an http.Client with the configured timeout. A zero
// timeout falls back to types.DefaultTimeout so requests never hang forever.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Response is the outcome of a successful GetXML call.
type Response struct {
	StatusCode int
	Body       []byte
	Elapsed    time.Duration
}

// GetXML issues a single GET for rawURL and returns the full body when the
// status is 2xx. Non-2xx statuses yield an *UpstreamError; transport
// failures are returned wrapped but otherwise untouched. No retries.
func GetXML(ctx context.Context, client *http.Client, rawURL, userAgent string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("site search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &UpstreamError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Elapsed:    time.Since(start),
	}, nil
}
