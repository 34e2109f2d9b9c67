package parallel

import (
	"cmp"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/engine"
	"github.com/katalvlaran/treesearch/frontier"
	"github.com/katalvlaran/treesearch/state"
)

// ParallelBFSBranching seeds a frontier the same way ParallelDFSBranching
// does, except that the seeding pass stops once a layer holds
// min(workers, nodesReached) nodes, then fans seed items out across
// workers, each expanding its own
// worker-private, layer-by-layer BFSBranchingFrontier. Every worker's
// residual queue and retrieved-node count are combined into the single
// FIFOCollection and total this function returns.
func ParallelBFSBranching[S state.Branching[S, Q], Q cmp.Ordered](
	global *control.ThreadSafeControl[S, Q],
	root S,
	filterWidth, depthLimit, nodesReached, workers int,
) (*frontier.FIFOCollection[S], int64, error) {
	if err := control.ValidatePositive("filter_width", filterWidth); err != nil {
		return nil, 0, err
	}
	if err := control.ValidatePositive("depth_limit", depthLimit); err != nil {
		return nil, 0, err
	}
	if err := control.ValidatePositive("nodes_reached", nodesReached); err != nil {
		return nil, 0, err
	}
	if err := control.ValidateWorkers(workers); err != nil {
		return nil, 0, err
	}
	workers = resolveWorkers(workers)

	seedThreshold := workers
	if nodesReached < seedThreshold {
		seedThreshold = nodesReached
	}

	seedCtrl := control.New[S, Q]()
	seedDepth, residual, err := engine.BFSBranching(seedCtrl, root, filterWidth, depthLimit, seedThreshold)
	if err != nil {
		return nil, 0, err
	}
	global.Merge(seedCtrl)

	items := residual.Items()
	merged := frontier.NewFIFO[S]()
	var retrieved int64
	if len(items) == 0 || global.ShouldStop() || seedDepth >= depthLimit {
		return merged, retrieved, nil
	}

	var mu sync.Mutex
	ch := seedChannel(items)
	g, _ := errgroup.WithContext(global.Context())
	for i := 0; i < min(workers, len(items)); i++ {
		g.Go(guardWorker[S, Q](global, func() error {
			for seed := range ch {
				res, n, err := drainBFSBranchingSeed(global, seed, filterWidth, depthLimit, nodesReached)
				if err != nil {
					return err
				}
				mu.Lock()
				for _, it := range res.Items() {
					merged.Store(it)
				}
				retrieved += n
				mu.Unlock()
				if global.ShouldStop() {
					return nil
				}
			}
			return nil
		}))
	}
	if err := rethrowWorkerPanic(g.Wait()); err != nil {
		return nil, 0, err
	}
	return merged, retrieved, nil
}

func drainBFSBranchingSeed[S state.Branching[S, Q], Q cmp.Ordered](
	global *control.ThreadSafeControl[S, Q],
	seed S,
	filterWidth, depthLimit, nodesReached int,
) (*frontier.FIFOCollection[S], int64, error) {
	f := engine.NewBFSBranchingFrontier[S](seed)
	for f.Depth() < depthLimit && !global.ShouldStop() {
		local := newLocalControl[S, Q](global)
		engine.RunBFSBranchingSlice(local, f, filterWidth, depthLimit, nodesReached)
		global.Merge(local)
		if local.VisitedNodes() == 0 {
			break
		}
	}
	return f.Residual(), int64(f.RetrievedNodes()), nil
}

// ParallelBFSMutable is the Mutable-state analogue of
// ParallelBFSBranching.
func ParallelBFSMutable[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	global *control.ThreadSafeControl[S, Q],
	root S,
	filterWidth, depthLimit, nodesReached, workers int,
) (*frontier.FIFOCollection[S], int64, error) {
	if err := control.ValidatePositive("filter_width", filterWidth); err != nil {
		return nil, 0, err
	}
	if err := control.ValidatePositive("depth_limit", depthLimit); err != nil {
		return nil, 0, err
	}
	if err := control.ValidatePositive("nodes_reached", nodesReached); err != nil {
		return nil, 0, err
	}
	if err := control.ValidateWorkers(workers); err != nil {
		return nil, 0, err
	}
	workers = resolveWorkers(workers)

	seedThreshold := workers
	if nodesReached < seedThreshold {
		seedThreshold = nodesReached
	}

	seedCtrl := control.New[S, Q]()
	seedDepth, residual, err := engine.BFSMutable[S, C, Q](seedCtrl, root, filterWidth, depthLimit, seedThreshold)
	if err != nil {
		return nil, 0, err
	}
	global.Merge(seedCtrl)

	items := residual.Items()
	merged := frontier.NewFIFO[S]()
	var retrieved int64
	if len(items) == 0 || global.ShouldStop() || seedDepth >= depthLimit {
		return merged, retrieved, nil
	}

	var mu sync.Mutex
	ch := seedChannel(items)
	g, _ := errgroup.WithContext(global.Context())
	for i := 0; i < min(workers, len(items)); i++ {
		g.Go(guardWorker[S, Q](global, func() error {
			for seed := range ch {
				res, n, err := drainBFSMutableSeed[S, C, Q](global, seed, filterWidth, depthLimit, nodesReached)
				if err != nil {
					return err
				}
				mu.Lock()
				for _, it := range res.Items() {
					merged.Store(it)
				}
				retrieved += n
				mu.Unlock()
				if global.ShouldStop() {
					return nil
				}
			}
			return nil
		}))
	}
	if err := rethrowWorkerPanic(g.Wait()); err != nil {
		return nil, 0, err
	}
	return merged, retrieved, nil
}

func drainBFSMutableSeed[S state.Mutable[S, C, Q], C any, Q cmp.Ordered](
	global *control.ThreadSafeControl[S, Q],
	seed S,
	filterWidth, depthLimit, nodesReached int,
) (*frontier.FIFOCollection[S], int64, error) {
	f := engine.NewBFSMutableFrontier[S, C, Q](seed)
	for f.Depth() < depthLimit && !global.ShouldStop() {
		local := newLocalControl[S, Q](global)
		engine.RunBFSMutableSlice[S, C, Q](local, f, filterWidth, depthLimit, nodesReached)
		global.Merge(local)
		if local.VisitedNodes() == 0 {
			break
		}
	}
	return f.Residual(), int64(f.RetrievedNodes()), nil
}
