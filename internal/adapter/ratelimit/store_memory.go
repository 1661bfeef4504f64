package ratelimit

import (
	"sync"
	"time"

	"github.com/taracare/askgate/internal/domain"
)

// rateWindowRecord is the per-key counter. Each record carries its own lock
// so concurrent requests for different keys never contend.
type rateWindowRecord struct {
	mu          sync.Mutex
	count       int
	windowStart time.Time
}

// MemoryStore is the default process-local RateStore. State lives for the
// process lifetime; stale windows reset lazily on the key's next request.
type MemoryStore struct {
	recs sync.Map // key -> *rateWindowRecord
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Increment bumps the counter for key within the current fixed window,
// starting a fresh window when the previous one has aged out.
func (s *MemoryStore) Increment(_ domain.Context, key string, now time.Time, window time.Duration) (int, error) {
	v, _ := s.recs.LoadOrStore(key, &rateWindowRecord{windowStart: now})
	rec := v.(*rateWindowRecord)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if now.Sub(rec.windowStart) > window {
		rec.count = 0
		rec.windowStart = now
	}
	rec.count++
	return rec.count, nil
}
