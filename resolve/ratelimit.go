package resolve

import (
	"context"
	"sync"

	"github.com/shodoc/shodoc"
	"golang.org/x/time/rate"
)

var _ shodoc.HostLimiter = (*HostRateLimiter)(nil)

// HostRateLimiter provides per-host rate limiting using token buckets.
// Each host gets its own limiter so api.github.com and
// raw.githubusercontent.com are throttled independently.
type HostRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostRateLimiter creates a limiter with the given requests per second.
// Each host gets a burst of 1 (no bursting allowed).
func NewHostRateLimiter(rps float64) *HostRateLimiter {
	return &HostRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the host.
// Returns an error if the context is canceled before the wait completes.
func (h *HostRateLimiter) Wait(ctx context.Context, host string) error {
	h.mu.Lock()
	limiter, ok := h.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(h.rps), 1)
		h.limiters[host] = limiter
	}
	h.mu.Unlock()

	return limiter.Wait(ctx)
}
