package engine

import (
	"cmp"
	"math"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/frontier"
	"github.com/katalvlaran/treesearch/state"
)

type dfsBranchNode[S any] struct {
	depth int
	state S
}

// DFSBranchingFrontier is a resumable depth-first frontier over Branching
// states: the stack and backtrack bookkeeping survive across multiple
// RunDFSBranchingSlice calls, which is what lets a parallel worker
// reconstruct a fresh local SearchControl per time slice without losing
// its place in the tree (see package parallel).
type DFSBranchingFrontier[S any] struct {
	stack      *frontier.LIFOCollection[dfsBranchNode[S]]
	lastDepth  int
	backtracks int
}

// NewDFSBranchingFrontier seeds a frontier with root at depth 0.
func NewDFSBranchingFrontier[S any](root S) *DFSBranchingFrontier[S] {
	f := &DFSBranchingFrontier[S]{
		stack:     frontier.NewLIFO[dfsBranchNode[S]](),
		lastDepth: -1,
	}
	f.stack.Store(dfsBranchNode[S]{depth: 0, state: root})
	return f
}

// Empty reports whether the frontier holds no more pending nodes.
func (f *DFSBranchingFrontier[S]) Empty() bool { return f.stack.Nodes() == 0 }

// Backtracks reports the cumulative backtrack count (one per strict depth
// decrease between successive pops).
func (f *DFSBranchingFrontier[S]) Backtracks() int { return f.backtracks }

// RunDFSBranchingSlice drives ctrl over f until the stack empties,
// ctrl.ShouldStop() becomes true, or backtrackLimit backtracks have been
// counted. filterWidth and depthLimit bound branching;
// backtrackLimit <= 0 or >= math.MaxInt means unbounded.
//
// Preconditions: filterWidth >= 1; violating this is a programmer error
// caught by the validating wrapper (DFSBranching), not by this function.
func RunDFSBranchingSlice[S state.Branching[S, Q], Q cmp.Ordered](
	ctrl *control.SearchControl[S, Q],
	f *DFSBranchingFrontier[S],
	filterWidth, depthLimit, backtrackLimit int,
) {
	useBacktrackLimit := backtrackLimit > 0 && backtrackLimit < math.MaxInt
	for !ctrl.ShouldStop() && !(useBacktrackLimit && f.backtracks >= backtrackLimit) {
		item, ok := f.stack.TryGetNext()
		if !ok {
			break
		}
		d, s := item.depth, item.state

		if f.lastDepth < 0 {
			f.lastDepth = d
		} else if d < f.lastDepth {
			f.backtracks++
		}
		f.lastDepth = d

		for _, c := range takeReversed(s.Branches(), filterWidth) {
			if ctrl.VisitNode(c) == control.Discard {
				continue
			}
			if d+1 < depthLimit {
				f.stack.Store(dfsBranchNode[S]{depth: d + 1, state: c})
			}
		}
	}
}

// DFSBranching runs an iterative, depth-first search over a Branching
// state tree starting at root, visiting at most filterWidth children per
// node (in their natural order, preserved under the LIFO traversal by
// pushing in reverse) and no deeper than depthLimit, backtracking at most
// backtrackLimit times. Use math.MaxInt (or any sufficiently large value)
// for "no limit".
//
// root itself is passed to ctrl.VisitNode once, up front, unconditionally
// seeding the frontier regardless of the result: the frontier's own loop
// (see RunDFSBranchingSlice) only ever calls VisitNode on *children*, so
// without this the root would never be counted or considered for the
// incumbent, and a depth-5 binary tree under filter_width=1 would visit 5
// nodes instead of the expected 6 (root + 5 descendants).
func DFSBranching[S state.Branching[S, Q], Q cmp.Ordered](
	ctrl *control.SearchControl[S, Q],
	root S,
	filterWidth, depthLimit, backtrackLimit int,
) error {
	if err := control.ValidatePositive("filter_width", filterWidth); err != nil {
		return err
	}
	if err := control.ValidatePositive("depth_limit", depthLimit); err != nil {
		return err
	}
	if err := control.ValidatePositive("backtrack_limit", backtrackLimit); err != nil {
		return err
	}
	ctrl.VisitNode(root)
	f := NewDFSBranchingFrontier[S](root)
	RunDFSBranchingSlice(ctrl, f, filterWidth, depthLimit, backtrackLimit)
	return nil
}
