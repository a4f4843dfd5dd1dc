// Package slog provides logging decorators built on log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/textract"
)

// Ensure LoggingFetcher implements textract.Fetcher.
var _ textract.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every fetch.
type LoggingFetcher struct {
	next   textract.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next textract.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs url, size and duration.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "err", err)
			f.logger.Error("fetch", attrs...)
			return
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
