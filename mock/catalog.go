package mock

import (
	"context"

	"github.com/shodoc/shodoc"
)

var _ shodoc.CatalogLoader = (*CatalogLoader)(nil)

// CatalogLoader is a mock implementation of shodoc.CatalogLoader.
type CatalogLoader struct {
	LoadFn func(ctx context.Context) ([]*shodoc.Project, error)
}

func (l *CatalogLoader) Load(ctx context.Context) ([]*shodoc.Project, error) {
	return l.LoadFn(ctx)
}
