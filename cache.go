package shodoc

import (
	"context"
	"time"
)

// CacheEntry is a cached README fetch result keyed by repository URL.
// Entries are write-once-per-key within a run: the first successful fetch
// wins and later lookups read it back without touching the network.
type CacheEntry struct {
	RepoURL     string
	Content     string
	ContentHash string
	FetchedAt   time.Time
}

// FetchCache stores successful README fetches so repeated runs (and repeated
// catalog entries pointing at the same repository) skip the network.
// The cache is an explicit dependency scoped to the caller, never a
// process-wide singleton.
type FetchCache interface {
	// Get returns the cached entry for the URL.
	// Returns ENOTFOUND if no entry exists.
	Get(ctx context.Context, repoURL string) (*CacheEntry, error)

	// Put stores an entry, replacing any previous entry for the same URL.
	Put(ctx context.Context, entry *CacheEntry) error
}
