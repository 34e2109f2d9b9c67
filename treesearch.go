// Package treesearch is the public façade over this module's search
// strategies: one function per strategy/state-shape combination, each
// building a SearchControl from the caller's functional options, driving
// the matching engine or parallel strategy, and returning the best state
// found (if any).
//
// Dispatch is by distinct function name — DFS-over-Branching,
// DFS-over-Mutable, BFS-over-Branching, and BFS-over-Mutable, sequential
// and parallel — rather than a runtime Algorithm enum, since Go generics
// would need a type switch to do that anyway.
package treesearch

import (
	"cmp"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/engine"
	"github.com/katalvlaran/treesearch/frontier"
	"github.com/katalvlaran/treesearch/parallel"
	"github.com/katalvlaran/treesearch/quality"
	"github.com/katalvlaran/treesearch/state"
	"github.com/katalvlaran/treesearch/validate"
)

// SolveDFSBranching runs a sequential depth-first search over a Branching
// state tree and returns the best state found, its quality, and whether
// any valued node was ever visited.
func SolveDFSBranching[S state.Branching[S, Q], Q cmp.Ordered](
	root S,
	filterWidth, depthLimit, backtrackLimit int,
	opts ...control.Option[S, Q],
) (best S, bestQ quality.Quality[Q], found bool, err error) {
	ctrl := control.New[S, Q](opts...)
	if err = engine.DFSBranching(ctrl, root, filterWidth, depthLimit, backtrackLimit); err != nil {
		return best, bestQ, false, err
	}
	ctrl.Finish()
	best, bestQ, found = ctrl.Incumbent()
	return best, bestQ, found, nil
}

// SolveDFSMutable runs a sequential depth-first search over a Mutable state
// and returns the best state found.
func SolveDFSMutable[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	root S,
	filterWidth, depthLimit, backtrackLimit int,
	opts ...control.Option[S, Q],
) (best S, bestQ quality.Quality[Q], found bool, err error) {
	ctrl := control.New[S, Q](opts...)
	if err = engine.DFSMutable(ctrl, root, filterWidth, depthLimit, backtrackLimit); err != nil {
		return best, bestQ, false, err
	}
	ctrl.Finish()
	best, bestQ, found = ctrl.Incumbent()
	return best, bestQ, found, nil
}

// SolveBFSBranching runs a sequential breadth-first search over a
// Branching state tree. Beyond the best state found, it also reports the
// depth reached and the residual (not-yet-expanded) frontier, since BFS's
// early-stop threshold (nodesReached) is routinely used as a seed-
// generation primitive rather than purely to find an optimum.
func SolveBFSBranching[S state.Branching[S, Q], Q cmp.Ordered](
	root S,
	filterWidth, depthLimit, nodesReached int,
	opts ...control.Option[S, Q],
) (best S, bestQ quality.Quality[Q], found bool, depth int, residual *frontier.FIFOCollection[S], err error) {
	ctrl := control.New[S, Q](opts...)
	depth, residual, err = engine.BFSBranching(ctrl, root, filterWidth, depthLimit, nodesReached)
	if err != nil {
		return best, bestQ, false, 0, nil, err
	}
	ctrl.Finish()
	best, bestQ, found = ctrl.Incumbent()
	return best, bestQ, found, depth, residual, nil
}

// SolveBFSMutable is the Mutable-state analogue of SolveBFSBranching.
func SolveBFSMutable[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	root S,
	filterWidth, depthLimit, nodesReached int,
	opts ...control.Option[S, Q],
) (best S, bestQ quality.Quality[Q], found bool, depth int, residual *frontier.FIFOCollection[S], err error) {
	ctrl := control.New[S, Q](opts...)
	depth, residual, err = engine.BFSMutable[S, C, Q](ctrl, root, filterWidth, depthLimit, nodesReached)
	if err != nil {
		return best, bestQ, false, 0, nil, err
	}
	ctrl.Finish()
	best, bestQ, found = ctrl.Incumbent()
	return best, bestQ, found, depth, residual, nil
}

// SolveParallelDFSBranching seeds a frontier via sequential BFS and fans
// out a depth-first search over it across workers, merging into a shared
// global control.
func SolveParallelDFSBranching[S state.Branching[S, Q], Q cmp.Ordered](
	root S,
	filterWidth, depthLimit, backtrackLimit, workers int,
	opts ...control.Option[S, Q],
) (best S, bestQ quality.Quality[Q], found bool, err error) {
	global := control.NewThreadSafe[S, Q](control.New[S, Q](opts...))
	if err = parallel.ParallelDFSBranching(global, root, filterWidth, depthLimit, backtrackLimit, workers); err != nil {
		return best, bestQ, false, err
	}
	global.Finish()
	best, bestQ, found = global.Incumbent()
	return best, bestQ, found, nil
}

// SolveParallelDFSMutable is the Mutable-state analogue of
// SolveParallelDFSBranching.
func SolveParallelDFSMutable[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	root S,
	filterWidth, depthLimit, backtrackLimit, workers int,
	opts ...control.Option[S, Q],
) (best S, bestQ quality.Quality[Q], found bool, err error) {
	global := control.NewThreadSafe[S, Q](control.New[S, Q](opts...))
	if err = parallel.ParallelDFSMutable[S, C, Q](global, root, filterWidth, depthLimit, backtrackLimit, workers); err != nil {
		return best, bestQ, false, err
	}
	global.Finish()
	best, bestQ, found = global.Incumbent()
	return best, bestQ, found, nil
}

// SolveParallelBFSBranching seeds a frontier via sequential BFS and fans
// out further breadth-first expansion across workers, returning the merged
// residual frontier and the summed retrieved-node count alongside the best
// state found.
func SolveParallelBFSBranching[S state.Branching[S, Q], Q cmp.Ordered](
	root S,
	filterWidth, depthLimit, nodesReached, workers int,
	opts ...control.Option[S, Q],
) (best S, bestQ quality.Quality[Q], found bool, residual *frontier.FIFOCollection[S], retrieved int64, err error) {
	global := control.NewThreadSafe[S, Q](control.New[S, Q](opts...))
	residual, retrieved, err = parallel.ParallelBFSBranching(global, root, filterWidth, depthLimit, nodesReached, workers)
	if err != nil {
		return best, bestQ, false, nil, 0, err
	}
	global.Finish()
	best, bestQ, found = global.Incumbent()
	return best, bestQ, found, residual, retrieved, nil
}

// SolveParallelBFSMutable is the Mutable-state analogue of
// SolveParallelBFSBranching.
func SolveParallelBFSMutable[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	root S,
	filterWidth, depthLimit, nodesReached, workers int,
	opts ...control.Option[S, Q],
) (best S, bestQ quality.Quality[Q], found bool, residual *frontier.FIFOCollection[S], retrieved int64, err error) {
	global := control.NewThreadSafe[S, Q](control.New[S, Q](opts...))
	residual, retrieved, err = parallel.ParallelBFSMutable[S, C, Q](global, root, filterWidth, depthLimit, nodesReached, workers)
	if err != nil {
		return best, bestQ, false, nil, 0, err
	}
	global.Finish()
	best, bestQ, found = global.Incumbent()
	return best, bestQ, found, residual, retrieved, nil
}

// Validate runs the randomized self-consistency screen against state. See
// package validate for the Outcome bitset's meaning; the returned
// StateCollection snapshots the states visited along the walk, in order, for
// inspection when the Outcome flags a problem.
func Validate[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](root S, eq validate.Comparer[C]) (validate.Outcome, frontier.StateCollection[S]) {
	return validate.Validate[S, C, Q](root, eq)
}
