// Package ratelimit implements the fixed-window request throttle.
package ratelimit

import (
	"time"

	"log/slog"

	"github.com/taracare/askgate/internal/domain"
)

// PlaceholderKey groups requests whose client identity could not be derived.
// Throttling fails open into one shared bucket rather than rejecting.
const PlaceholderKey = "ip"

// Limiter admits or throttles requests per client key using a fixed-window
// counter. Windows reset lazily on the next access; an idle key costs nothing.
type Limiter struct {
	Store  domain.RateStore
	Max    int
	Window time.Duration

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// NewLimiter constructs a Limiter over the given store.
func NewLimiter(store domain.RateStore, max int, window time.Duration) *Limiter {
	return &Limiter{Store: store, Max: max, Window: window}
}

func (l *Limiter) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Admit reports whether the client may proceed. It never errors: a missing
// key falls back to the placeholder bucket and a broken store fails open.
func (l *Limiter) Admit(ctx domain.Context, clientKey string) bool {
	if clientKey == "" {
		clientKey = PlaceholderKey
	}
	count, err := l.Store.Increment(ctx, clientKey, l.now(), l.Window)
	if err != nil {
		slog.Warn("rate store unavailable, admitting request", slog.Any("error", err))
		return true
	}
	return count <= l.Max
}
