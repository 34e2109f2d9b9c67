// Package validate implements a randomized self-consistency screen for a
// user-supplied Mutable state: it probes whether Clone, Apply, UndoLast
// and Choices agree with each other on an independent clone of the state
// under test, using a fixed-seed pseudo-random walk so that a verdict is
// reproducible.
//
// Uses a single *rand.Rand constructed from a fixed seed, never shared
// across goroutines, threaded explicitly through the walk rather than
// hidden in package-level state.
package validate

import (
	"cmp"
	"math/rand"

	"github.com/katalvlaran/treesearch/frontier"
	"github.com/katalvlaran/treesearch/state"
)

// fixedSeed is a contract, not a default: spec reproducibility of verdicts
// depends on reusing exactly this seed.
const fixedSeed int64 = 13

// maxSteps bounds the random walk's depth.
const maxSteps = 1000

// Outcome is a bitset of everything a Validate run observed. Ok alone means
// no problem was detected; it does not prove correctness, only that this
// particular randomized probe found no contradiction.
type Outcome uint8

const (
	// Ok means the probe completed with no contradiction detected.
	Ok Outcome = 1 << iota
	// Inconclusive means no moves were possible from the root state, so
	// Clone/Apply/UndoLast were never exercised.
	Inconclusive
	// CloningProblem means the clone's choice sequence or terminal flag
	// diverged from the original's at some step, despite both having taken
	// the same path — Clone is not producing an independent, equivalent copy.
	CloningProblem
	// UndoProblem means a state's choice sequence after Apply then UndoLast
	// no longer matches what was observed before Apply.
	UndoProblem
	// ComparerProblem means the two states agreed at one level but their
	// first choices compared unequal under the user's comparer — the
	// comparer conflates distinct choices (or the reverse).
	ComparerProblem
	// SequenceProblem means the two choice sets matched but in a different
	// order, indicating non-deterministic Choices/Branches rather than an
	// actual state divergence.
	SequenceProblem
)

// Comparer reports whether two choice tokens are equal.
type Comparer[C any] func(a, b C) bool

// Validate performs up to maxSteps random Apply steps against root and an
// independent clone of root, taken in lockstep. At each step it compares
// the two states' Choices sequences under eq (element-wise, then as an
// unordered set if the element-wise check fails, to distinguish a genuine
// divergence from a determinism problem), applies the same randomly chosen
// choice to both, and pushes the expected choice list onto a stack. After
// the walk ends, it rewinds both states via UndoLast, popping the expected
// list at each step and re-checking sequence equality.
//
// Validate never mutates root's caller-visible identity: it clones root
// twice up front and walks those two independent clones, leaving the
// original argument untouched.
//
// Alongside the Outcome bitset, Validate returns a StateCollection
// snapshotting every state the walk visited along original's path, in visit
// order — a read-only trail callers can inspect when an Outcome flags a
// problem, without exposing the walk's live, still-mutating states.
func Validate[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](root S, eq Comparer[C]) (Outcome, frontier.StateCollection[S]) {
	rng := rand.New(rand.NewSource(fixedSeed))

	original := root.Clone()
	shadow := root.Clone()

	visited := []S{original.Clone()}

	origChoices := collect(original.Choices())
	if len(origChoices) == 0 {
		return Inconclusive, frontier.NewStateCollection(visited)
	}

	type step struct {
		expected []C
		choice   C
	}
	var trail []step

	var outcome Outcome
	for i := 0; i < maxSteps; i++ {
		oc := collect(original.Choices())
		sc := collect(shadow.Choices())

		if original.IsTerminal() != shadow.IsTerminal() {
			outcome |= CloningProblem
		}

		switch seqCompare(oc, sc, eq) {
		case seqDiverged:
			if len(oc) > 0 && len(sc) > 0 && !eq(oc[0], sc[0]) {
				outcome |= ComparerProblem
			} else {
				outcome |= CloningProblem
			}
		case seqReordered:
			outcome |= SequenceProblem
		}

		if len(oc) == 0 {
			break
		}

		idx := rng.Intn(len(oc))
		choice := oc[idx]
		trail = append(trail, step{expected: oc, choice: choice})

		original.Apply(choice)
		shadow.Apply(choice)
		visited = append(visited, original.Clone())
	}

	for i := len(trail) - 1; i >= 0; i-- {
		original.UndoLast()
		shadow.UndoLast()

		oc := collect(original.Choices())
		if seqCompare(oc, trail[i].expected, eq) != seqEqual {
			outcome |= UndoProblem
			break
		}
	}

	snapshot := frontier.NewStateCollection(visited)
	if outcome == 0 {
		return Ok, snapshot
	}
	return outcome, snapshot
}
