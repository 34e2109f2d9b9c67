package parallel

import (
	"cmp"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/engine"
	"github.com/katalvlaran/treesearch/state"
)

// ParallelDFSBranching seeds a frontier via a short sequential BFS (sized to
// at least workers items, bounded by depthLimit), then fans each seed item
// out to its own goroutine, each driving an independent depth-first search
// over a worker-private DFSBranchingFrontier that survives across
// repeated, short-lived local SearchControls. Results merge into global
// under its internal mutex.
//
// If the seed comes back empty, or global is already stopped, or
// depthLimit was reached while seeding, ParallelDFSBranching returns
// immediately having only run the seeding pass.
func ParallelDFSBranching[S state.Branching[S, Q], Q cmp.Ordered](
	global *control.ThreadSafeControl[S, Q],
	root S,
	filterWidth, depthLimit, backtrackLimit, workers int,
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
	if err := control.ValidateWorkers(workers); err != nil {
		return err
	}
	workers = resolveWorkers(workers)

	seedCtrl := control.New[S, Q]()
	seedDepth, residual, err := engine.BFSBranching(seedCtrl, root, filterWidth, depthLimit, workers)
	if err != nil {
		return err
	}
	global.Merge(seedCtrl)

	items := residual.Items()
	if len(items) == 0 || global.ShouldStop() || seedDepth >= depthLimit {
		return nil
	}

	ch := seedChannel(items)
	g, _ := errgroup.WithContext(global.Context())
	for i := 0; i < min(workers, len(items)); i++ {
		g.Go(guardWorker[S, Q](global, func() error {
			for seed := range ch {
				if err := drainDFSBranchingSeed(global, seed, filterWidth, depthLimit, backtrackLimit); err != nil {
					return err
				}
				if global.ShouldStop() {
					return nil
				}
			}
			return nil
		}))
	}
	return rethrowWorkerPanic(g.Wait())
}

// drainDFSBranchingSeed runs one worker's full share of the search: its
// worker-private frontier is driven by a fresh local SearchControl per
// slice (so global limits and the incumbent bound are periodically
// re-negotiated), while the frontier itself persists across slices — this
// is what keeps a worker from losing its place in the tree every slice.
func drainDFSBranchingSeed[S state.Branching[S, Q], Q cmp.Ordered](
	global *control.ThreadSafeControl[S, Q],
	seed S,
	filterWidth, depthLimit, backtrackLimit int,
) error {
	f := engine.NewDFSBranchingFrontier[S](seed)
	for !f.Empty() && !global.ShouldStop() {
		local := newLocalControl[S, Q](global)
		engine.RunDFSBranchingSlice(local, f, filterWidth, depthLimit, backtrackLimit)
		global.Merge(local)
	}
	return nil
}

// ParallelDFSMutable is the Mutable-state analogue of ParallelDFSBranching:
// each worker uses its assigned seed state, itself an independent clone
// produced by the seeding BFS pass, as its own physical state, synchronized
// lazily the same way the sequential DFSMutable engine does.
func ParallelDFSMutable[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	global *control.ThreadSafeControl[S, Q],
	root S,
	filterWidth, depthLimit, backtrackLimit, workers int,
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
	if err := control.ValidateWorkers(workers); err != nil {
		return err
	}
	workers = resolveWorkers(workers)

	seedCtrl := control.New[S, Q]()
	seedDepth, residual, err := engine.BFSMutable[S, C, Q](seedCtrl, root, filterWidth, depthLimit, workers)
	if err != nil {
		return err
	}
	global.Merge(seedCtrl)

	items := residual.Items()
	if len(items) == 0 || global.ShouldStop() || seedDepth >= depthLimit {
		return nil
	}

	ch := seedChannel(items)
	g, _ := errgroup.WithContext(global.Context())
	for i := 0; i < min(workers, len(items)); i++ {
		g.Go(guardWorker[S, Q](global, func() error {
			for seed := range ch {
				if err := drainDFSMutableSeed[S, C, Q](global, seed, filterWidth, depthLimit, backtrackLimit); err != nil {
					return err
				}
				if global.ShouldStop() {
					return nil
				}
			}
			return nil
		}))
	}
	return rethrowWorkerPanic(g.Wait())
}

func drainDFSMutableSeed[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	global *control.ThreadSafeControl[S, Q],
	seed S,
	filterWidth, depthLimit, backtrackLimit int,
) error {
	f := engine.NewDFSMutableFrontier[S, C, Q](seed, filterWidth)
	for !f.Empty() && !global.ShouldStop() {
		local := newLocalControl[S, Q](global)
		engine.RunDFSMutableSlice[S, C, Q](local, f, filterWidth, depthLimit, backtrackLimit)
		global.Merge(local)
	}
	return nil
}
