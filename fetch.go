package shodoc

import "context"

// Tier identifies which metadata source produced a fetch result.
type Tier string

// Tiers in fallback order. TierCatalog requires no I/O and cannot fail.
const (
	TierREADME  Tier = "readme"
	TierStatic  Tier = "static"
	TierCatalog Tier = "catalog"
)

// FetchResult holds the outcome of resolving a project through the fallback
// chain. Content is Markdown for the README and static tiers; it is empty
// for the catalog tier, whose body is synthesized by the page writer.
type FetchResult struct {
	Tier    Tier
	Content string
}

// ReadmeFetcher retrieves a project's README as Markdown.
// Rate-limit failures carry the ERATELIMIT code and are the only class the
// caller retries; ENOTFOUND, EUNAVAILABLE and EINVALID fail immediately.
type ReadmeFetcher interface {
	Fetch(ctx context.Context, repoURL string) (string, error)
}

// HostLimiter provides per-host rate limiting for outbound requests.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
