package engine

import "iter"

// take realizes at most n elements of seq, in seq's own order, stopping
// as soon as n elements have been collected so that seq need not be
// materialized beyond the requested prefix.
func take[S any](seq iter.Seq[S], n int) []S {
	if n <= 0 {
		return nil
	}
	out := make([]S, 0, min(n, 8))
	for v := range seq {
		out = append(out, v)
		if len(out) >= n {
			break
		}
	}
	return out
}

// takeReversed realizes at most n elements of seq and reverses them, so
// that pushing the result onto a LIFO stack preserves seq's natural order
// when popped one at a time.
func takeReversed[S any](seq iter.Seq[S], n int) []S {
	out := take(seq, n)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
