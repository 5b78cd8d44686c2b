package wordfreq

import "context"

// Fetcher retrieves HTML documents from URLs.
type Fetcher interface {
	// Fetch performs a single GET for the URL and returns the HTML document.
	// Failures are returned as a *DocumentError wrapping an *Error with one of
	// ENETWORK, ESTATUS, ECONTENTTYPE or EDECODE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Document, error)
}
