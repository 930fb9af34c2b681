package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shodoc/shodoc"
)

// Ensure LoggingCache implements shodoc.FetchCache.
var _ shodoc.FetchCache = (*LoggingCache)(nil)

// LoggingCache wraps a FetchCache with debug logging for hit/miss visibility.
type LoggingCache struct {
	next   shodoc.FetchCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next shodoc.FetchCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs the lookup.
func (c *LoggingCache) Get(ctx context.Context, repoURL string) (entry *shodoc.CacheEntry, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache get",
			"url", repoURL,
			"hit", err == nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.Get(ctx, repoURL)
}

// Put delegates to the wrapped cache and logs the write.
func (c *LoggingCache) Put(ctx context.Context, entry *shodoc.CacheEntry) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache put",
			"url", entry.RepoURL,
			"bytes", len(entry.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Put(ctx, entry)
}
