package mock

import (
	"context"

	"github.com/shodoc/shodoc"
)

var _ shodoc.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of shodoc.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *shodoc.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *shodoc.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
