package control

import (
	"cmp"
	"context"
	"sync"
	"time"

	"github.com/katalvlaran/treesearch/quality"
)

// ThreadSafeControl wraps a *SearchControl behind a single coarse mutex:
// one lock is enough because VisitNode does no heavy inner-loop
// arithmetic and contention is bounded by worker count. Readers of
// Incumbent/VisitedNodes observe a value consistent with the last
// VisitNode call made under this lock.
type ThreadSafeControl[S Observable[S, Q], Q cmp.Ordered] struct {
	mu   sync.Mutex
	inner *SearchControl[S, Q]
}

// NewThreadSafe wraps inner for concurrent use.
func NewThreadSafe[S Observable[S, Q], Q cmp.Ordered](inner *SearchControl[S, Q]) *ThreadSafeControl[S, Q] {
	return &ThreadSafeControl[S, Q]{inner: inner}
}

// VisitNode serializes a call to the wrapped control's VisitNode.
func (c *ThreadSafeControl[S, Q]) VisitNode(s S) VisitResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.VisitNode(s)
}

// ShouldStop serializes a call to the wrapped control's ShouldStop.
func (c *ThreadSafeControl[S, Q]) ShouldStop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.ShouldStop()
}

// RequestStop serializes a call to the wrapped control's RequestStop.
func (c *ThreadSafeControl[S, Q]) RequestStop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.RequestStop()
}

// Merge serializes a call to the wrapped control's Merge.
func (c *ThreadSafeControl[S, Q]) Merge(other *SearchControl[S, Q]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Merge(other)
}

// VisitedNodes serializes a read of the wrapped control's node counter.
func (c *ThreadSafeControl[S, Q]) VisitedNodes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.VisitedNodes()
}

// RemainingNodeBudget reports the node limit minus the nodes visited so
// far, or ok=false if no node limit is configured. Used by parallel
// workers to size their per-slice local node limit.
func (c *ThreadSafeControl[S, Q]) RemainingNodeBudget() (remaining int64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	limit, has := c.inner.NodeLimit()
	if !has {
		return 0, false
	}
	remaining = limit - c.inner.VisitedNodes()
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// IncumbentBound reports a Quality equal to the current global incumbent,
// suitable for seeding a worker's local bound, or ok=false if there is no
// incumbent yet.
func (c *ThreadSafeControl[S, Q]) IncumbentBound() (quality.Quality[Q], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, q, ok := c.inner.Incumbent()
	return q, ok
}

// Incumbent serializes a read of the wrapped control's incumbent.
func (c *ThreadSafeControl[S, Q]) Incumbent() (S, quality.Quality[Q], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Incumbent()
}

// Finish serializes a call to the wrapped control's Finish.
func (c *ThreadSafeControl[S, Q]) Finish() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Finish()
}

// Context reports the wrapped control's cancellation source. Set once at
// construction and never mutated afterward, so no locking is needed.
func (c *ThreadSafeControl[S, Q]) Context() context.Context {
	return c.inner.Context()
}

// Snapshot is a point-in-time, lock-free-to-read copy of the control's
// externally interesting state, for diagnostics.
type Snapshot[Q any] struct {
	VisitedNodes int64
	HasIncumbent bool
	IncumbentQ   Q
	Elapsed      time.Duration
}

// Snapshot takes a consistent snapshot under the lock.
func (c *ThreadSafeControl[S, Q]) Snapshot() Snapshot[Q] {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, q, ok := c.inner.Incumbent()
	return Snapshot[Q]{
		VisitedNodes: c.inner.VisitedNodes(),
		HasIncumbent: ok,
		IncumbentQ:   q.Value,
		Elapsed:      time.Since(c.inner.StartTime()),
	}
}
