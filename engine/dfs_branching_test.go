package engine_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/engine"
	"github.com/stretchr/testify/require"
)

func TestDFSBranchingWidthClamp(t *testing.T) {
	root := binNode{maxDepth: 5}
	ctrl := control.New[binNode, int]()

	err := engine.DFSBranching(ctrl, root, 1, math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	require.EqualValues(t, 6, ctrl.VisitedNodes(),
		"filter_width=1 on a depth-5 tree: expected root + 5 descendants")
}

func TestDFSBranchingCompleteEnumeration(t *testing.T) {
	root := binNode{maxDepth: 3}
	ctrl := control.New[binNode, int]()

	err := engine.DFSBranching(ctrl, root, 2, math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	// A full binary tree of depth 3 has 1+2+4+8 = 15 nodes.
	require.EqualValues(t, 15, ctrl.VisitedNodes())
}

func TestDFSBranchingPreOrder(t *testing.T) {
	var log []string
	root := binNode{maxDepth: 2, log: &log}
	ctrl := control.New[binNode, int]()

	err := engine.DFSBranching(ctrl, root, 2, math.MaxInt, math.MaxInt)
	require.NoError(t, err)

	want := []string{"", "0", "00", "01", "1", "10", "11"}
	require.Equal(t, want, log)
}

func TestDFSBranchingDepthLimit(t *testing.T) {
	root := binNode{maxDepth: 5}
	ctrl := control.New[binNode, int]()

	// depthLimit=2 lets the engine push children at depth 0 and 1, but a
	// child at depth 2 is visited (and counted) without being pushed.
	err := engine.DFSBranching(ctrl, root, 2, 2, math.MaxInt)
	require.NoError(t, err)
	// root(1) + depth1(2) + depth2(4) = 7 visited; depth2 nodes never expand.
	require.EqualValues(t, 7, ctrl.VisitedNodes())
}

func TestDFSBranchingRejectsNonPositiveArgs(t *testing.T) {
	root := binNode{maxDepth: 1}
	ctrl := control.New[binNode, int]()

	err := engine.DFSBranching(ctrl, root, 0, 1, 1)
	require.Error(t, err)
}
