package mock

import (
	"context"

	"github.com/shodoc/shodoc"
)

var _ shodoc.FetchCache = (*FetchCache)(nil)

// FetchCache is a mock implementation of shodoc.FetchCache.
type FetchCache struct {
	GetFn func(ctx context.Context, repoURL string) (*shodoc.CacheEntry, error)
	PutFn func(ctx context.Context, entry *shodoc.CacheEntry) error
}

func (c *FetchCache) Get(ctx context.Context, repoURL string) (*shodoc.CacheEntry, error) {
	return c.GetFn(ctx, repoURL)
}

func (c *FetchCache) Put(ctx context.Context, entry *shodoc.CacheEntry) error {
	return c.PutFn(ctx, entry)
}
