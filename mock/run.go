package mock

import (
	"context"

	"github.com/shodoc/shodoc"
)

var _ shodoc.RunService = (*RunService)(nil)

// RunService is a mock implementation of shodoc.RunService.
type RunService struct {
	RecordRunFn func(ctx context.Context, run *shodoc.Run) error
	FindRunsFn  func(ctx context.Context, limit int) ([]*shodoc.Run, error)
}

func (s *RunService) RecordRun(ctx context.Context, run *shodoc.Run) error {
	return s.RecordRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, limit int) ([]*shodoc.Run, error) {
	return s.FindRunsFn(ctx, limit)
}
