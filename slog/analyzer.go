package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Ensure LoggingAnalyzer implements wordfreq.Analyzer.
var _ wordfreq.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging.
type LoggingAnalyzer struct {
	next   wordfreq.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next wordfreq.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the outcome.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, url string) (analysis *wordfreq.Analysis, err error) {
	defer func(begin time.Time) {
		var terms, tokens int
		if analysis != nil {
			terms = analysis.Table.Len()
			tokens = analysis.Table.Total()
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
		}
		a.logger.Log(ctx, level, "analyze",
			"url", url,
			"terms", terms,
			"tokens", tokens,
			"duration", time.Since(begin),
			"code", wordfreq.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, url)
}
