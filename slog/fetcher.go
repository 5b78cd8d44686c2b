// Package slog provides log/slog decorators for wordfreq services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Ensure LoggingFetcher implements wordfreq.Fetcher.
var _ wordfreq.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   wordfreq.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wordfreq.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *wordfreq.Document, err error) {
	defer func(begin time.Time) {
		var size int
		var contentType string
		if doc != nil {
			size = len(doc.Body)
			contentType = doc.ContentType
		}
		f.logger.Info("fetch",
			"url", url,
			"content_type", contentType,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
