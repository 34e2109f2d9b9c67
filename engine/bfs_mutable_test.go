package engine_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/engine"
	"github.com/stretchr/testify/require"
)

func TestBFSMutableLayering(t *testing.T) {
	root := &binMutable{maxDepth: 10}
	ctrl := control.New[*binMutable, int]()

	depth, residual, err := engine.BFSMutable(ctrl, root, 2, math.MaxInt, 7)
	require.NoError(t, err)
	require.Equal(t, 3, depth, "nodes_reached=7 on a wide-enough mutable tree")
	require.EqualValues(t, 8, residual.Nodes(), "nodes_reached=7")
}

// TestBFSMutableClonesIndependentStates ensures each layer's states are
// independent clones, not aliases of a single mutated physical state: the
// residual states at different positions must carry distinct trails.
func TestBFSMutableClonesIndependentStates(t *testing.T) {
	root := &binMutable{maxDepth: 10}
	ctrl := control.New[*binMutable, int]()

	_, residual, err := engine.BFSMutable(ctrl, root, 2, math.MaxInt, 3)
	require.NoError(t, err)

	items := residual.Items()
	require.GreaterOrEqual(t, len(items), 2)
	seen := make(map[string]bool)
	for _, it := range items {
		key := string(it.trail)
		require.False(t, seen[key], "found duplicate trail %q: clones are not independent", key)
		seen[key] = true
	}
}
