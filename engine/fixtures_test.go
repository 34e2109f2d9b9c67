package engine_test

import (
	"iter"

	"github.com/katalvlaran/treesearch/quality"
)

// binNode is a full binary tree of fixed maxDepth, used to exercise the
// Branching engines. log, when non-nil, records each expanded node's label
// in expansion order as a side effect of Branches (called once per node
// the engine pops from its frontier), which lets tests assert traversal
// order without needing a real objective value.
type binNode struct {
	depth, maxDepth int
	label           string
	log             *[]string
}

func (n binNode) Branches() iter.Seq[binNode] {
	if n.log != nil {
		*n.log = append(*n.log, n.label)
	}
	return func(yield func(binNode) bool) {
		if n.depth >= n.maxDepth {
			return
		}
		left := binNode{depth: n.depth + 1, maxDepth: n.maxDepth, label: n.label + "0", log: n.log}
		right := binNode{depth: n.depth + 1, maxDepth: n.maxDepth, label: n.label + "1", log: n.log}
		if !yield(left) {
			return
		}
		if !yield(right) {
			return
		}
	}
}

func (n binNode) Quality() (quality.Quality[int], bool) {
	return quality.Quality[int]{}, false
}

func (n binNode) Bound() (quality.Quality[int], bool) { return quality.Quality[int]{}, false }
func (n binNode) IsTerminal() bool                    { return n.depth >= n.maxDepth }
func (n binNode) Clone() binNode                      { return n }

// binMutable is the Mutable-state analogue of binNode: a choice token is a
// byte (0 = left, 1 = right), applied/undone against a single depth counter
// and a trail recording the path taken.
type binMutable struct {
	depth, maxDepth int
	trail           []byte
}

func (m *binMutable) Branches() iter.Seq[*binMutable] {
	// Unused by the Mutable engines (they call Choices/Apply instead), but
	// required to satisfy state.Branching, which state.Mutable embeds.
	return func(yield func(*binMutable) bool) {}
}

func (m *binMutable) Choices() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		if m.depth >= m.maxDepth {
			return
		}
		if !yield(byte(0)) {
			return
		}
		yield(byte(1))
	}
}

func (m *binMutable) Apply(c byte) {
	m.trail = append(m.trail, c)
	m.depth++
}

func (m *binMutable) UndoLast() {
	m.trail = m.trail[:len(m.trail)-1]
	m.depth--
}

func (m *binMutable) Quality() (quality.Quality[int], bool) { return quality.Quality[int]{}, false }
func (m *binMutable) Bound() (quality.Quality[int], bool)   { return quality.Quality[int]{}, false }
func (m *binMutable) IsTerminal() bool                      { return m.depth >= m.maxDepth }

func (m *binMutable) Clone() *binMutable {
	trail := make([]byte, len(m.trail))
	copy(trail, m.trail)
	return &binMutable{depth: m.depth, maxDepth: m.maxDepth, trail: trail}
}
