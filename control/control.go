// Package control implements SearchControl, the shared runtime object the
// search engines drive: it owns the incumbent, the node counter, resource
// limits (wall clock, node count, cancellation), the pluggable bound
// predicate, and the ordered improvement callbacks.
//
// A SearchControl is created fresh for each top-level search via New and
// is mutated only through VisitNode and Merge; ThreadSafeControl adds a
// single coarse mutex around those mutations for parallel use.
package control

import (
	"cmp"
	"context"
	"time"

	"github.com/katalvlaran/treesearch/quality"
)

// VisitResult tells the engine whether to keep expanding the visited node.
type VisitResult int

const (
	// Continue means the node was accepted; the engine may expand it.
	Continue VisitResult = iota
	// Discard means the node was pruned; the engine must not expand it.
	Discard
)

// Observable is the minimal surface SearchControl needs from a state: a
// possibly-absent Quality, a possibly-absent Bound, and Clone for taking
// an incumbent snapshot. Any S satisfying state.Branching[S, Q] structurally
// satisfies Observable[S, Q] as well.
type Observable[S any, Q cmp.Ordered] interface {
	Quality() (quality.Quality[Q], bool)
	Bound() (quality.Quality[Q], bool)
	Clone() S
}

// SearchControl is the shared runtime object described in package docs.
type SearchControl[S Observable[S, Q], Q cmp.Ordered] struct {
	opts Options[S, Q]

	visitedNodes int64

	hasIncumbent bool
	incumbent    S
	incumbentQ   quality.Quality[Q]

	stopRequested bool

	startTime  time.Time
	finishTime time.Time
	finished   bool
}

// New constructs a SearchControl configured by opts, with its start time
// set to now.
func New[S Observable[S, Q], Q cmp.Ordered](opts ...Option[S, Q]) *SearchControl[S, Q] {
	o := defaultOptions[S, Q]()
	for _, fn := range opts {
		fn(&o)
	}
	return &SearchControl[S, Q]{opts: o, startTime: time.Now()}
}

// VisitNode is called once per produced node. It increments the node
// counter, updates the incumbent if s strictly improves it (invoking
// every improvement callback synchronously, in registration order), and
// returns Discard if a global bound rules out s's subtree.
func (c *SearchControl[S, Q]) VisitNode(s S) VisitResult {
	c.visitedNodes++

	if q, ok := s.Quality(); ok {
		if !c.hasIncumbent || q.IsBetter(c.incumbentQ) {
			c.incumbent = s.Clone()
			c.incumbentQ = q
			c.hasIncumbent = true
			for _, cb := range c.opts.callbacks {
				cb(c.incumbent, c.incumbentQ)
			}
		}
	}

	if c.opts.hasBound {
		if b, ok := s.Bound(); ok && !b.IsBetter(c.opts.bound) {
			return Discard
		}
	}

	return Continue
}

// ShouldStop reports whether the engine driving this control must stop:
// cancellation fired, the node limit was reached, the wall-clock deadline
// passed, or RequestStop was called.
func (c *SearchControl[S, Q]) ShouldStop() bool {
	if c.stopRequested {
		return true
	}
	if c.opts.hasNodeLimit && c.visitedNodes >= c.opts.nodeLimit {
		return true
	}
	if c.opts.hasRuntimeLimit && time.Since(c.startTime) >= c.opts.runtimeLimit {
		return true
	}
	select {
	case <-c.opts.ctx.Done():
		return true
	default:
	}
	return false
}

// RequestStop sets the external stop signal consulted by ShouldStop.
func (c *SearchControl[S, Q]) RequestStop() {
	c.stopRequested = true
}

// Merge adopts other's incumbent if it strictly improves this control's,
// and adds other's visited-node count to this control's. Merge never
// worsens the incumbent and never decreases the node counter.
func (c *SearchControl[S, Q]) Merge(other *SearchControl[S, Q]) {
	if other.hasIncumbent && (!c.hasIncumbent || other.incumbentQ.IsBetter(c.incumbentQ)) {
		c.incumbent = other.incumbent
		c.incumbentQ = other.incumbentQ
		c.hasIncumbent = true
	}
	c.visitedNodes += other.visitedNodes
}

// Finish records the control's end time. Call once, when the search that
// owns this control has completed its work.
func (c *SearchControl[S, Q]) Finish() {
	c.finishTime = time.Now()
	c.finished = true
}

// VisitedNodes reports the cumulative node count.
func (c *SearchControl[S, Q]) VisitedNodes() int64 { return c.visitedNodes }

// Incumbent reports the best state found so far and its quality. ok is
// false if no valued node has been visited yet.
func (c *SearchControl[S, Q]) Incumbent() (S, quality.Quality[Q], bool) {
	return c.incumbent, c.incumbentQ, c.hasIncumbent
}

// Bound reports the externally configured pruning bound, if any.
func (c *SearchControl[S, Q]) Bound() (quality.Quality[Q], bool) {
	return c.opts.bound, c.opts.hasBound
}

// NodeLimit reports the configured node limit, if any.
func (c *SearchControl[S, Q]) NodeLimit() (int64, bool) {
	return c.opts.nodeLimit, c.opts.hasNodeLimit
}

// StartTime reports when this control was constructed.
func (c *SearchControl[S, Q]) StartTime() time.Time { return c.startTime }

// FinishTime reports when Finish was called; the zero time if it has not
// been called yet.
func (c *SearchControl[S, Q]) FinishTime() time.Time { return c.finishTime }

// Context reports the cancellation source installed via WithCancellation
// (context.Background() if none was given). Parallel workers read this to
// propagate the global cancellation token into their own local controls.
func (c *SearchControl[S, Q]) Context() context.Context { return c.opts.ctx }
