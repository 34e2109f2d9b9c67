package engine

import (
	"cmp"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/frontier"
	"github.com/katalvlaran/treesearch/state"
)

// BFSBranchingFrontier is a resumable breadth-first frontier over
// Branching states, backed by a bi-level FIFO so that one depth layer is
// fully drained before the next begins (the "layered order" invariant).
type BFSBranchingFrontier[S any] struct {
	bilevel *frontier.BiLevelFIFOCollection[S]
	depth   int
}

// NewBFSBranchingFrontier seeds a frontier with root in the current
// (get) layer, at depth 0.
func NewBFSBranchingFrontier[S any](root S) *BFSBranchingFrontier[S] {
	return &BFSBranchingFrontier[S]{bilevel: frontier.NewBiLevelFIFOSeeded(root)}
}

// Depth reports the final depth reached so far.
func (f *BFSBranchingFrontier[S]) Depth() int { return f.depth }

// Residual returns a single-level FIFO view of the frontier's remaining,
// not-yet-expanded nodes (current layer followed by next layer).
func (f *BFSBranchingFrontier[S]) Residual() *frontier.FIFOCollection[S] {
	return f.bilevel.ToSingleLevel()
}

// RetrievedNodes reports how many nodes this frontier has dequeued for
// expansion over its lifetime; parallel BFS sums this across workers.
func (f *BFSBranchingFrontier[S]) RetrievedNodes() int { return f.bilevel.RetrievedNodes() }

// RunBFSBranchingSlice drains complete depth layers of f until the
// current layer is empty, depthLimit is reached, the current layer's size
// reaches nodesReached (the early-stop seed-generation threshold), or
// ctrl.ShouldStop(). nodesReached is checked before draining a layer, not
// mid-drain, so a layer that trips the threshold is left intact in the
// frontier for the caller to inspect via Residual.
func RunBFSBranchingSlice[S state.Branching[S, Q], Q cmp.Ordered](
	ctrl *control.SearchControl[S, Q],
	f *BFSBranchingFrontier[S],
	filterWidth, depthLimit, nodesReached int,
) {
	for f.bilevel.GetQueueNodes() > 0 &&
		f.depth < depthLimit &&
		f.bilevel.GetQueueNodes() < nodesReached &&
		!ctrl.ShouldStop() {

		for {
			s, ok := f.bilevel.TryFromGetQueue()
			if !ok {
				break
			}
			for _, c := range take(s.Branches(), filterWidth) {
				if ctrl.VisitNode(c) == control.Continue {
					f.bilevel.ToPutQueue(c)
				}
			}
		}
		f.depth++
		f.bilevel.SwapQueues()
	}
}

// BFSBranching runs a sequential breadth-first search over a Branching
// state tree starting at root. It returns the depth reached and the
// residual frontier (nodes not yet expanded): either because depthLimit
// was reached, nodesReached's early-stop threshold was hit, or the search
// was otherwise stopped. nodesReached bounds the seed-generation use
// case; pass a very large value for "expand fully".
//
// root itself is passed to ctrl.VisitNode once, up front, for the same
// reason as DFSBranching.
func BFSBranching[S state.Branching[S, Q], Q cmp.Ordered](
	ctrl *control.SearchControl[S, Q],
	root S,
	filterWidth, depthLimit, nodesReached int,
) (int, *frontier.FIFOCollection[S], error) {
	if err := control.ValidatePositive("filter_width", filterWidth); err != nil {
		return 0, nil, err
	}
	if err := control.ValidatePositive("depth_limit", depthLimit); err != nil {
		return 0, nil, err
	}
	if err := control.ValidatePositive("nodes_reached", nodesReached); err != nil {
		return 0, nil, err
	}
	ctrl.VisitNode(root)
	f := NewBFSBranchingFrontier[S](root)
	RunBFSBranchingSlice(ctrl, f, filterWidth, depthLimit, nodesReached)
	return f.Depth(), f.Residual(), nil
}
