// Package resolve orchestrates the tiered metadata fallback chain: README
// fetch with rate-limit retry, source-file static analysis, then catalog
// metadata as the unconditional last resort.
package resolve

import (
	"context"
	"log/slog"
	"time"

	"github.com/shodoc/shodoc"
	"github.com/shodoc/shodoc/md"
)

// state models the README tier's retry loop. Transitions are driven by the
// classified failure type; only rate-limit failures enter backoffWait.
type state int

const (
	stateAttempting state = iota
	stateBackoffWait
	stateSucceeded
	stateExhausted
)

// DefaultRetryDelays returns the backoff delays applied between rate-limited
// README fetch attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Resolver resolves each project to a FetchResult, trying tiers in order
// and stopping at the first success. Resolve never fails: the catalog tier
// requires no I/O.
type Resolver struct {
	Fetcher   shodoc.ReadmeFetcher
	Extractor shodoc.SourceExtractor

	// Cache, when set, is consulted before the network and updated after a
	// successful README fetch. It is scoped to the caller, never global.
	Cache shodoc.FetchCache

	// Delays are the backoff waits between rate-limited attempts. The wait
	// for retry n is Delays[n]; len(Delays) bounds the retry count.
	// Defaults to DefaultRetryDelays().
	Delays []time.Duration

	Logger *slog.Logger
}

// Resolve runs the fallback chain for one project. The returned result is
// never nil; its Content is empty for the catalog tier, whose body the page
// writer synthesizes from the project itself.
func (r *Resolver) Resolve(ctx context.Context, p *shodoc.Project) *shodoc.FetchResult {
	logger := r.logger().With("project", p.Name, "category", p.Category)

	if content, ok := r.readmeTier(ctx, p, logger); ok {
		return &shodoc.FetchResult{Tier: shodoc.TierREADME, Content: content}
	}

	if content, ok := r.staticTier(p, logger); ok {
		return &shodoc.FetchResult{Tier: shodoc.TierStatic, Content: content}
	}

	logger.Debug("falling back to catalog metadata")
	return &shodoc.FetchResult{Tier: shodoc.TierCatalog}
}

// readmeTier consults the cache, then fetches with rate-limit retry.
func (r *Resolver) readmeTier(ctx context.Context, p *shodoc.Project, logger *slog.Logger) (string, bool) {
	if r.Cache != nil {
		entry, err := r.Cache.Get(ctx, p.RepoURL)
		switch {
		case err == nil:
			logger.Debug("readme cache hit", "url", p.RepoURL)
			return entry.Content, true
		case shodoc.ErrorCode(err) != shodoc.ENOTFOUND:
			logger.Warn("readme cache lookup failed", "url", p.RepoURL, "error", err)
		}
	}

	content, err := r.fetchWithRetry(ctx, p.RepoURL, logger)
	if err != nil {
		if shodoc.ErrorCode(err) == shodoc.EINTERNAL {
			logger.Error("readme fetch failed unexpectedly", "url", p.RepoURL, "error", err)
		} else {
			logger.Debug("readme tier miss", "url", p.RepoURL, "error", shodoc.ErrorMessage(err))
		}
		return "", false
	}

	if r.Cache != nil {
		entry := &shodoc.CacheEntry{
			RepoURL:   p.RepoURL,
			Content:   content,
			FetchedAt: time.Now().UTC(),
		}
		if err := r.Cache.Put(ctx, entry); err != nil {
			logger.Warn("readme cache write failed", "url", p.RepoURL, "error", err)
		}
	}

	return content, true
}

// fetchWithRetry drives the retry state machine. Rate-limit failures wait
// Delays[attempt] and try again; every other failure exhausts immediately.
func (r *Resolver) fetchWithRetry(ctx context.Context, url string, logger *slog.Logger) (string, error) {
	delays := r.Delays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	st := stateAttempting
	attempt := 0
	var content string
	var lastErr error

	for {
		switch st {
		case stateAttempting:
			content, lastErr = r.Fetcher.Fetch(ctx, url)
			switch {
			case lastErr == nil:
				st = stateSucceeded
			case shodoc.ErrorCode(lastErr) == shodoc.ERATELIMIT && attempt < len(delays):
				st = stateBackoffWait
			default:
				st = stateExhausted
			}

		case stateBackoffWait:
			logger.Warn("rate limited, backing off",
				"url", url,
				"retry", attempt+1,
				"delay", delays[attempt],
			)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delays[attempt]):
			}
			attempt++
			st = stateAttempting

		case stateSucceeded:
			return content, nil

		case stateExhausted:
			return "", lastErr
		}
	}
}

// staticTier runs the source-file extractor when a source path is known.
// An empty-but-valid metadata result still counts as success.
func (r *Resolver) staticTier(p *shodoc.Project, logger *slog.Logger) (string, bool) {
	if p.SourcePath == "" || r.Extractor == nil {
		return "", false
	}

	meta, err := r.Extractor.Extract(p.SourcePath)
	if err != nil {
		if shodoc.ErrorCode(err) == shodoc.EINVALID {
			logger.Warn("source file parse failed", "path", p.SourcePath, "error", shodoc.ErrorMessage(err))
		} else {
			logger.Debug("static tier miss", "path", p.SourcePath, "error", shodoc.ErrorMessage(err))
		}
		return "", false
	}

	return md.SourceBody(p, meta), true
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
