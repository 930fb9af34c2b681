// Package mock provides hand-written mocks for shodoc interfaces.
package mock

import (
	"context"

	"github.com/shodoc/shodoc"
)

var _ shodoc.ReadmeFetcher = (*ReadmeFetcher)(nil)

// ReadmeFetcher is a mock implementation of shodoc.ReadmeFetcher.
type ReadmeFetcher struct {
	FetchFn func(ctx context.Context, repoURL string) (string, error)
}

func (f *ReadmeFetcher) Fetch(ctx context.Context, repoURL string) (string, error) {
	return f.FetchFn(ctx, repoURL)
}
