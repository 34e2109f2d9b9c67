// Package state declares the two polymorphic shapes of problem state that
// the search engines consume: Branching (a node produces child nodes as
// values) and Mutable (a node produces choice tokens applied/undone
// in place). Implementations are supplied entirely by the caller; this
// package only names the contract.
//
// Branches and Choices return iter.Seq, Go's range-over-func lazy
// sequence. Engines realize only the prefix they need (bounded by
// filter_width), so a terminal state may return an empty sequence without
// any implementation ever allocating a slice for it.
package state

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/treesearch/quality"
)

// Branching describes an immutable-style search-tree node: a child is a
// new value, the parent is never mutated.
//
// Contract: Branches must be deterministic — the same state always
// produces the same sequence, in the same order. A terminal state's
// Branches returns an empty sequence.
type Branching[S any, Q cmp.Ordered] interface {
	// Branches yields this node's children in a fixed, natural order.
	Branches() iter.Seq[S]

	// Quality reports this node's objective value, if it is a valued
	// (e.g. terminal/leaf) node. ok is false when the node has no value.
	Quality() (q quality.Quality[Q], ok bool)

	// Bound reports an optimistic estimate usable for pruning, if any.
	Bound() (b quality.Quality[Q], ok bool)

	// IsTerminal reports whether this node has no children.
	IsTerminal() bool

	// Clone returns a deep, independent copy of this state.
	Clone() S
}

// Mutable describes a choice-based search-tree node: a choice token C is
// applied to the receiver in place, and can later be undone, avoiding a
// per-child allocation.
//
// Contract: after Apply(c) immediately followed by UndoLast(), the state
// must be observationally identical to the state before Apply — same
// Choices in the same order, same Quality, same Bound, same IsTerminal.
type Mutable[S any, C any, Q cmp.Ordered] interface {
	Branching[S, Q]

	// Choices yields the choice tokens applicable at this node, in a
	// fixed, natural order.
	Choices() iter.Seq[C]

	// Apply mutates the receiver into the child induced by c.
	Apply(c C)

	// UndoLast reverts the most recent Apply.
	UndoLast()
}
