// Package parallel implements the seed-then-fan-out parallel search
// strategies: a short sequential breadth-first pass produces a seed
// frontier of at least workers items, then up to workers goroutines drain
// the seed items concurrently, each repeatedly building a short-lived
// local SearchControl against a worker-private frontier and merging back
// into the shared global ThreadSafeControl.
//
// Concurrency model: the only object shared across workers is the global
// ThreadSafeControl, held behind a single coarse mutex; frontiers and
// local controls are worker-private. Fan-out and first-fault propagation
// use golang.org/x/sync/errgroup rather than a hand-rolled
// WaitGroup-plus-channel, so the first error from a worker is
// re-surfaced once every worker has joined. Because
// errgroup.Group.Go does not recover panics on its own, each worker body is
// wrapped so a panic inside user code (Branches, Choices, Apply, UndoLast,
// Clone, Quality, Bound) is recovered, marks the global control stopped,
// and travels through errgroup as an ordinary error — then is re-panicked
// with its original value only after every worker has joined.
package parallel
