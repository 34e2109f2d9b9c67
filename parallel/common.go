package parallel

import (
	"cmp"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/katalvlaran/treesearch/control"
)

// sliceDuration is the per-worker local-control runtime budget: short
// enough that global budget/incumbent re-negotiation happens at bounded
// intervals.
const sliceDuration = 500 * time.Millisecond

// resolveWorkers turns the public workers=-1 sentinel into the host's
// hardware thread count; any positive value passes through unchanged.
func resolveWorkers(workers int) int {
	if workers == -1 {
		return runtime.NumCPU()
	}
	return workers
}

// newLocalControl builds one worker's short-lived local SearchControl: it
// inherits the global cancellation token, a node limit capped by the
// remaining global budget (if any), and a pruning bound seeded from the
// global incumbent (if any), so that a newly spawned worker never explores
// a subtree the rest of the search has already ruled out.
func newLocalControl[S control.Observable[S, Q], Q cmp.Ordered](global *control.ThreadSafeControl[S, Q]) *control.SearchControl[S, Q] {
	opts := []control.Option[S, Q]{
		control.WithCancellation[S, Q](global.Context()),
		control.WithRuntimeLimit[S, Q](sliceDuration),
	}
	if remaining, ok := global.RemainingNodeBudget(); ok {
		opts = append(opts, control.WithNodeLimit[S, Q](remaining))
	}
	if q, ok := global.IncumbentBound(); ok {
		opts = append(opts, control.WithUpperBound[S, Q](q))
	}
	return control.New[S, Q](opts...)
}

// seedChannel loads every seed item into a buffered, already-closed work
// channel, used by every ParallelXxx entry point to hand work items to
// goroutines.
func seedChannel[S any](items []S) <-chan S {
	ch := make(chan S, len(items))
	for _, it := range items {
		ch <- it
	}
	close(ch)
	return ch
}

// workerPanic carries a value recovered from a panicking worker goroutine
// so it can travel through errgroup.Group as an ordinary error and be
// re-raised once every worker has joined.
type workerPanic struct {
	value any
}

func (p *workerPanic) Error() string {
	return fmt.Sprintf("parallel: worker panicked: %v", p.value)
}

// guardWorker wraps fn for use as an errgroup.Group.Go body: a panic
// inside fn is recovered and turned into a *workerPanic error for
// errgroup.Group.Wait to report, and global is marked stopped so sibling
// workers' ShouldStop() loops exit instead of running to completion
// unaware anything went wrong. The errgroup's derived context is not
// consulted by the workers; marking global stopped is what halts them.
func guardWorker[S control.Observable[S, Q], Q cmp.Ordered](global *control.ThreadSafeControl[S, Q], fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				global.RequestStop()
				err = &workerPanic{value: r}
			}
		}()
		return fn()
	}
}

// rethrowWorkerPanic re-panics with the original recovered value if err
// wraps a workerPanic, otherwise returns err unchanged. Called on the
// error errgroup.Group.Wait() returns, so a worker fault is re-surfaced
// faithfully — as the panic it originally was — after every worker has
// joined, rather than silently flattened into a plain error.
func rethrowWorkerPanic(err error) error {
	var wp *workerPanic
	if errors.As(err, &wp) {
		panic(wp.value)
	}
	return err
}
