package control

import (
	"cmp"
	"context"
	"time"

	"github.com/katalvlaran/treesearch/quality"
)

// Options holds everything a fluent builder can configure on a
// SearchControl before it starts driving a search. Unset limits behave as
// "no limit"; construct via New with zero or more Option values, the same
// functional-options idiom used throughout this module's sibling packages.
type Options[S any, Q cmp.Ordered] struct {
	ctx context.Context

	hasRuntimeLimit bool
	runtimeLimit    time.Duration

	hasNodeLimit bool
	nodeLimit    int64

	hasBound bool
	bound    quality.Quality[Q]

	callbacks []func(S, quality.Quality[Q])
}

// Option mutates an Options value during construction.
type Option[S any, Q cmp.Ordered] func(*Options[S, Q])

// defaultOptions returns the zero-limits configuration: background
// context, no deadline, no node limit, no bound, no callbacks.
func defaultOptions[S any, Q cmp.Ordered]() Options[S, Q] {
	return Options[S, Q]{ctx: context.Background()}
}

// WithCancellation installs ctx as the cooperative cancellation source;
// ShouldStop observes ctx.Done(). A nil ctx is ignored.
func WithCancellation[S any, Q cmp.Ordered](ctx context.Context) Option[S, Q] {
	return func(o *Options[S, Q]) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithRuntimeLimit bounds wall-clock time measured from the control's
// construction (its start time).
func WithRuntimeLimit[S any, Q cmp.Ordered](d time.Duration) Option[S, Q] {
	return func(o *Options[S, Q]) {
		o.hasRuntimeLimit = true
		o.runtimeLimit = d
	}
}

// WithNodeLimit bounds the number of nodes VisitNode may observe.
func WithNodeLimit[S any, Q cmp.Ordered](n int64) Option[S, Q] {
	return func(o *Options[S, Q]) {
		o.hasNodeLimit = true
		o.nodeLimit = n
	}
}

// WithImprovementCallback registers cb to be invoked, in registration
// order, exactly when the incumbent strictly improves.
func WithImprovementCallback[S any, Q cmp.Ordered](cb func(S, quality.Quality[Q])) Option[S, Q] {
	return func(o *Options[S, Q]) {
		if cb != nil {
			o.callbacks = append(o.callbacks, cb)
		}
	}
}

// WithUpperBound installs q as the external pruning bound for a
// minimization objective: a node whose own Bound() is not strictly
// better than q is discarded.
func WithUpperBound[S any, Q cmp.Ordered](q quality.Quality[Q]) Option[S, Q] {
	return withBound[S](q)
}

// WithLowerBound installs q as the external pruning bound for a
// maximization objective. Quality already carries its own Direction, so
// this behaves identically to WithUpperBound — both simply install the
// bound predicate appropriate to q's own direction.
func WithLowerBound[S any, Q cmp.Ordered](q quality.Quality[Q]) Option[S, Q] {
	return withBound[S](q)
}

func withBound[S any, Q cmp.Ordered](q quality.Quality[Q]) Option[S, Q] {
	return func(o *Options[S, Q]) {
		o.hasBound = true
		o.bound = q
	}
}
