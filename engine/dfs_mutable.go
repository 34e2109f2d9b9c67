package engine

import (
	"cmp"
	"math"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/frontier"
	"github.com/katalvlaran/treesearch/state"
)

type dfsMutableChoice[C any] struct {
	depth  int
	choice C
}

// DFSMutableFrontier is a resumable depth-first frontier over a single
// physical Mutable state: the stack holds choice tokens, not states, so
// memory is O(depth × branching-factor) rather than O(frontier size).
// Lazily synchronizing the physical state to the next stack entry via
// bounded Apply/UndoLast calls is the engine's central trick; that
// synchronization and the physical state itself both live here so a
// parallel worker can resume them across time slices.
type DFSMutableFrontier[S state.Mutable[S, C, Q], C any, Q cmp.Ordered] struct {
	physical   S
	stateDepth int
	stack      *frontier.LIFOCollection[dfsMutableChoice[C]]
	lastDepth  int
	backtracks int
}

// NewDFSMutableFrontier seeds a frontier from physical's current state,
// pushing its first filterWidth choices (in reverse) at depth 0.
// physical is taken by value and is the single state this frontier will
// mutate in place for its entire lifetime.
func NewDFSMutableFrontier[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	physical S, filterWidth int,
) *DFSMutableFrontier[S, C, Q] {
	f := &DFSMutableFrontier[S, C, Q]{
		physical:  physical,
		stack:     frontier.NewLIFO[dfsMutableChoice[C]](),
		lastDepth: -1,
	}
	for _, c := range takeReversed(physical.Choices(), filterWidth) {
		f.stack.Store(dfsMutableChoice[C]{depth: 0, choice: c})
	}
	return f
}

// Empty reports whether the frontier holds no more pending choices.
func (f *DFSMutableFrontier[S, C, Q]) Empty() bool { return f.stack.Nodes() == 0 }

// StateDepth reports the current depth of the physical state, i.e. the
// number of Apply calls not yet undone.
func (f *DFSMutableFrontier[S, C, Q]) StateDepth() int { return f.stateDepth }

// RunDFSMutableSlice drives ctrl over f's physical state until the stack
// empties, ctrl.ShouldStop() becomes true, or backtrackLimit is reached.
//
// Backtrack counting follows "one backtrack per strict depth decrease on
// pop", measured against the previous pop's depth — the same rule used
// for Branching states — rather than once per entry into the undo loop,
// which would double count a same-depth sibling transition.
func RunDFSMutableSlice[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	ctrl *control.SearchControl[S, Q],
	f *DFSMutableFrontier[S, C, Q],
	filterWidth, depthLimit, backtrackLimit int,
) {
	useBacktrackLimit := backtrackLimit > 0 && backtrackLimit < math.MaxInt
	for !ctrl.ShouldStop() && !(useBacktrackLimit && f.backtracks >= backtrackLimit) {
		item, ok := f.stack.TryGetNext()
		if !ok {
			break
		}
		d, c := item.depth, item.choice

		if f.lastDepth < 0 {
			f.lastDepth = d
		} else if d < f.lastDepth {
			f.backtracks++
		}
		f.lastDepth = d

		for d < f.stateDepth {
			f.physical.UndoLast()
			f.stateDepth--
		}
		f.physical.Apply(c)
		f.stateDepth++

		if ctrl.VisitNode(f.physical) == control.Discard {
			continue
		}
		if f.stateDepth >= depthLimit {
			continue
		}
		for _, cc := range takeReversed(f.physical.Choices(), filterWidth) {
			f.stack.Store(dfsMutableChoice[C]{depth: f.stateDepth, choice: cc})
		}
	}
}

// DFSMutable runs an iterative, depth-first search over a Mutable state
// starting at root, using a single physical state synchronized lazily via
// bounded Apply/UndoLast as described on DFSMutableFrontier.
//
// root itself is passed to ctrl.VisitNode once, up front, for the same
// reason as DFSBranching: the frontier loop only ever visits states
// reached via Apply, never root itself.
func DFSMutable[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
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
	f := NewDFSMutableFrontier[S, C, Q](root, filterWidth)
	RunDFSMutableSlice(ctrl, f, filterWidth, depthLimit, backtrackLimit)
	return nil
}
