package validate_test

import (
	"iter"
	"testing"

	"github.com/katalvlaran/treesearch/quality"
	"github.com/katalvlaran/treesearch/validate"
	"github.com/stretchr/testify/require"
)

// walker is a minimal, correctly-implemented Mutable fixture: a trail of
// bytes up to maxDepth, used to confirm Validate reports Ok on a
// well-behaved state.
type walker struct {
	depth, maxDepth int
	trail           []byte
}

func (w *walker) Branches() iter.Seq[*walker] { return func(yield func(*walker) bool) {} }

func (w *walker) Choices() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		if w.depth >= w.maxDepth {
			return
		}
		if !yield(byte(0)) {
			return
		}
		yield(byte(1))
	}
}

func (w *walker) Apply(c byte) {
	w.trail = append(w.trail, c)
	w.depth++
}

func (w *walker) UndoLast() {
	w.trail = w.trail[:len(w.trail)-1]
	w.depth--
}

func (w *walker) Quality() (quality.Quality[int], bool) { return quality.Quality[int]{}, false }
func (w *walker) Bound() (quality.Quality[int], bool)   { return quality.Quality[int]{}, false }
func (w *walker) IsTerminal() bool                      { return w.depth >= w.maxDepth }

func (w *walker) Clone() *walker {
	trail := make([]byte, len(w.trail))
	copy(trail, w.trail)
	return &walker{depth: w.depth, maxDepth: w.maxDepth, trail: trail}
}

func byteEq(a, b byte) bool { return a == b }

func TestValidateOkOnCorrectState(t *testing.T) {
	root := &walker{maxDepth: 6}
	got, snapshot := validate.Validate[*walker, byte, int](root, byteEq)
	require.Equal(t, validate.Ok, got)
	require.Greater(t, snapshot.Len(), 1, "a 6-deep walk should visit more than just the root")
}

func TestValidateInconclusiveOnTerminalRoot(t *testing.T) {
	root := &walker{maxDepth: 0}
	got, snapshot := validate.Validate[*walker, byte, int](root, byteEq)
	require.Equal(t, validate.Inconclusive, got)
	require.Equal(t, 1, snapshot.Len(), "a terminal root never takes a step")
}

// flakyClone simulates a real-world cloning bug: its second Clone call (the
// one Validate uses to build its "shadow" state) silently truncates
// maxDepth, so the two clones it hands Validate behave differently from
// each other despite coming from the same root.
type flakyClone struct {
	depth, maxDepth int
	trail           []byte
	calls           *int
}

func (f *flakyClone) Branches() iter.Seq[*flakyClone] { return func(yield func(*flakyClone) bool) {} }

func (f *flakyClone) Choices() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		if f.depth >= f.maxDepth {
			return
		}
		if !yield(byte(0)) {
			return
		}
		yield(byte(1))
	}
}

func (f *flakyClone) Apply(c byte) {
	f.trail = append(f.trail, c)
	f.depth++
}

func (f *flakyClone) UndoLast() {
	f.trail = f.trail[:len(f.trail)-1]
	f.depth--
}

func (f *flakyClone) Quality() (quality.Quality[int], bool) { return quality.Quality[int]{}, false }
func (f *flakyClone) Bound() (quality.Quality[int], bool)   { return quality.Quality[int]{}, false }
func (f *flakyClone) IsTerminal() bool                      { return f.depth >= f.maxDepth }

func (f *flakyClone) Clone() *flakyClone {
	*f.calls++
	maxDepth := f.maxDepth
	if *f.calls == 2 {
		maxDepth = 2
	}
	trail := make([]byte, len(f.trail))
	copy(trail, f.trail)
	return &flakyClone{depth: f.depth, maxDepth: maxDepth, trail: trail, calls: f.calls}
}

func TestValidateDetectsCloningProblem(t *testing.T) {
	root := &flakyClone{maxDepth: 6, calls: new(int)}
	got, _ := validate.Validate[*flakyClone, byte, int](root, byteEq)
	require.NotZero(t, got&validate.CloningProblem, "expected CloningProblem to be flagged")
}
