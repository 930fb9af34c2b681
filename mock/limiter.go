package mock

import (
	"context"

	"github.com/shodoc/shodoc"
)

var _ shodoc.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of shodoc.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
