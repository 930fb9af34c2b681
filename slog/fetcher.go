// Package slog provides logging decorators for shodoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shodoc/shodoc"
)

// Ensure LoggingFetcher implements shodoc.ReadmeFetcher.
var _ shodoc.ReadmeFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a ReadmeFetcher with logging.
type LoggingFetcher struct {
	next   shodoc.ReadmeFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next shodoc.ReadmeFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, repoURL string) (content string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("readme fetch",
			"url", repoURL,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, repoURL)
}
