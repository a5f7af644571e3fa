// Upstream fetch: the pluggable collaborator spec.md §1/§6 scopes out of
// the core transformation engine. Fetcher returns a playlist body as text
// or fails with an UpstreamError carrying a distinguished code, per §4.7
// and §7. The HTTP implementation's connection pooling follows the same
// http.Transport tuning the teacher repo used for its origin client.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// UpstreamError signals a fetch failure: a non-2xx status, a transport
// error, a timeout, or a body missing the #EXTM3U sentinel.
type UpstreamError struct {
	URL  string
	Code string // HTTP status code as a string, "timeout", "invalid" (missing #EXTM3U), or "error"
	Err  error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream fetch %s failed (%s): %v", e.URL, e.Code, e.Err)
	}
	return fmt.Sprintf("upstream fetch %s failed (%s)", e.URL, e.Code)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Fetcher retrieves a playlist body from an absolute URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Options configures an HTTP Fetcher's connection pooling and timeout.
type Options struct {
	Timeout               time.Duration
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	MaxConnsPerHost       int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ExpectContinueTimeout time.Duration
}

// HTTPFetcher fetches playlists over net/http with a bounded per-request
// timeout and a pooled, reusable transport.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPFetcher builds a Fetcher backed by a connection-pooled client.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	transport := &http.Transport{
		MaxIdleConns:          opts.MaxIdleConns,
		MaxIdleConnsPerHost:   opts.MaxIdleConnsPerHost,
		MaxConnsPerHost:       opts.MaxConnsPerHost,
		IdleConnTimeout:       opts.IdleConnTimeout,
		TLSHandshakeTimeout:   opts.TLSHandshakeTimeout,
		ExpectContinueTimeout: opts.ExpectContinueTimeout,
	}
	return &HTTPFetcher{
		client:  &http.Client{Transport: transport, Timeout: opts.Timeout},
		timeout: opts.Timeout,
	}
}

// Fetch performs a bounded-timeout GET and validates the body carries the
// #EXTM3U sentinel before returning it.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	reqCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", &UpstreamError{URL: url, Code: "error", Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if reqCtx.Err() != nil {
			return "", &UpstreamError{URL: url, Code: "timeout", Err: err}
		}
		return "", &UpstreamError{URL: url, Code: "error", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UpstreamError{URL: url, Code: strconv.Itoa(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamError{URL: url, Code: "error", Err: err}
	}

	text := string(body)
	if !strings.Contains(text, "#EXTM3U") {
		return "", &UpstreamError{URL: url, Code: "invalid", Err: fmt.Errorf("body missing #EXTM3U sentinel")}
	}

	return text, nil
}
