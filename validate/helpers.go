package validate

import "iter"

// collect realizes seq in full, in its own order. Validate reasons about
// whole choice sets (not a filter_width-bounded prefix), so there is no
// early-exit opportunity here the way engine.take has.
func collect[C any](seq iter.Seq[C]) []C {
	var out []C
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// seqResult classifies how two choice sequences relate under a comparer.
type seqResult int

const (
	// seqEqual means a and b are equal element-wise.
	seqEqual seqResult = iota
	// seqReordered means a and b contain the same multiset of choices
	// (under eq) but in a different order.
	seqReordered
	// seqDiverged means a and b are not even equal as multisets.
	seqDiverged
)

// seqCompare classifies a against b under eq: element-wise equality first,
// then (if that fails) an O(n²) multiset comparison to distinguish a
// genuine divergence from a mere reordering.
func seqCompare[C any](a, b []C, eq Comparer[C]) seqResult {
	if len(a) != len(b) {
		return seqDiverged
	}
	allEqual := true
	for i := range a {
		if !eq(a[i], b[i]) {
			allEqual = false
			break
		}
	}
	if allEqual {
		return seqEqual
	}
	if isMultisetEqual(a, b, eq) {
		return seqReordered
	}
	return seqDiverged
}

// isMultisetEqual reports whether a and b contain the same elements under
// eq, ignoring order and allowing for duplicates (each element of a is
// matched against a distinct, not-yet-claimed element of b).
func isMultisetEqual[C any](a, b []C, eq Comparer[C]) bool {
	claimed := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if !claimed[j] && eq(x, y) {
				claimed[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
