// Package http provides the HTTP implementation of wordfreq.Fetcher and the
// browser UI server.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/wordfreq"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements wordfreq.Fetcher at compile time.
var _ wordfreq.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML documents with a single GET request.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient uses the given client instead of a new one. The client's own
// timeout is left untouched.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML document at url. The response must have status
// 200, a content type containing text/html and a UTF-8 body.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*wordfreq.Document, error) {
	fail := func(contentType string, err error) error {
		return &wordfreq.DocumentError{URL: url, ContentType: contentType, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fail("", wordfreq.Errorf(wordfreq.ENETWORK, "invalid request: %v", err))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fail("", wordfreq.Errorf(wordfreq.ENETWORK, "%v", err))
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")

	if resp.StatusCode != http.StatusOK {
		return nil, fail(contentType, wordfreq.Errorf(wordfreq.ESTATUS, "HTTP %d for %s", resp.StatusCode, url))
	}

	if contentType == "" {
		return nil, fail("", wordfreq.Errorf(wordfreq.ECONTENTTYPE, "response has no content type"))
	}
	if !IsHTML(contentType) {
		return nil, fail(contentType, wordfreq.Errorf(wordfreq.ECONTENTTYPE, "content type %q is not HTML", contentType))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(contentType, wordfreq.Errorf(wordfreq.ENETWORK, "reading response body: %v", err))
	}

	if !utf8.Valid(body) {
		return nil, fail(contentType, wordfreq.Errorf(wordfreq.EDECODE, "response body is not valid UTF-8"))
	}

	return &wordfreq.Document{
		URL:         url,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// IsHTML reports whether a Content-Type header value declares HTML.
func IsHTML(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "text/html")
}
