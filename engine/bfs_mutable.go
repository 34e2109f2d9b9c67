package engine

import (
	"cmp"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/frontier"
	"github.com/katalvlaran/treesearch/state"
)

// BFSMutableFrontier is the Mutable-state analogue of BFSBranchingFrontier:
// since a Mutable state can only hold one physical value, a layer's
// children are produced by cloning the parent before each Apply, so the
// frontier still holds independent state values (unlike the DFS mutable
// frontier, which holds only choice tokens against a single physical
// state).
type BFSMutableFrontier[S state.Mutable[S, C, Q], C any, Q cmp.Ordered] struct {
	bilevel *frontier.BiLevelFIFOCollection[S]
	depth   int
}

// NewBFSMutableFrontier seeds a frontier with root in the current layer.
func NewBFSMutableFrontier[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](root S) *BFSMutableFrontier[S, C, Q] {
	return &BFSMutableFrontier[S, C, Q]{bilevel: frontier.NewBiLevelFIFOSeeded(root)}
}

// Depth reports the final depth reached so far.
func (f *BFSMutableFrontier[S, C, Q]) Depth() int { return f.depth }

// Residual returns a single-level FIFO view of the frontier's remaining
// states.
func (f *BFSMutableFrontier[S, C, Q]) Residual() *frontier.FIFOCollection[S] {
	return f.bilevel.ToSingleLevel()
}

// RetrievedNodes reports how many states this frontier has dequeued for
// expansion over its lifetime; parallel BFS sums this across workers.
func (f *BFSMutableFrontier[S, C, Q]) RetrievedNodes() int { return f.bilevel.RetrievedNodes() }

// RunBFSMutableSlice is the Mutable-state analogue of
// RunBFSBranchingSlice: each child is produced as s.Clone() with c
// applied, rather than taken directly from Branches().
func RunBFSMutableSlice[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	ctrl *control.SearchControl[S, Q],
	f *BFSMutableFrontier[S, C, Q],
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
			for _, c := range take(s.Choices(), filterWidth) {
				child := s.Clone()
				child.Apply(c)
				if ctrl.VisitNode(child) == control.Continue {
					f.bilevel.ToPutQueue(child)
				}
			}
		}
		f.depth++
		f.bilevel.SwapQueues()
	}
}

// BFSMutable runs a sequential breadth-first search over a Mutable state
// starting at root, cloning the current state before each Apply so that
// the frontier holds independent values.
//
// root itself is passed to ctrl.VisitNode once, up front, for the same
// reason as DFSBranching.
func BFSMutable[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
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
	f := NewBFSMutableFrontier[S, C, Q](root)
	RunBFSMutableSlice(ctrl, f, filterWidth, depthLimit, nodesReached)
	return f.Depth(), f.Residual(), nil
}
