package engine_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/treesearch/control"
	"github.com/katalvlaran/treesearch/engine"
	"github.com/stretchr/testify/require"
)

func TestDFSMutableWidthClamp(t *testing.T) {
	root := &binMutable{maxDepth: 5}
	ctrl := control.New[*binMutable, int]()

	err := engine.DFSMutable(ctrl, root, 1, math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	require.EqualValues(t, 6, ctrl.VisitedNodes(), "filter_width=1 on a depth-5 mutable tree")
}

func TestDFSMutableCompleteEnumeration(t *testing.T) {
	root := &binMutable{maxDepth: 3}
	ctrl := control.New[*binMutable, int]()

	err := engine.DFSMutable(ctrl, root, 2, math.MaxInt, math.MaxInt)
	require.NoError(t, err)
	require.EqualValues(t, 15, ctrl.VisitedNodes(), "fully-explored depth-3 mutable tree")
}

// TestDFSMutableStateDepthMatchesPhysicalDepth exercises the Apply/UndoLast
// synchronization directly: the frontier's own depth bookkeeping must always
// agree with the physical state's actual depth (its apply-minus-undo count).
func TestDFSMutableStateDepthMatchesPhysicalDepth(t *testing.T) {
	root := &binMutable{maxDepth: 3}
	ctrl := control.New[*binMutable, int]()

	f := engine.NewDFSMutableFrontier[*binMutable, byte, int](root, 2)
	engine.RunDFSMutableSlice(ctrl, f, 2, math.MaxInt, math.MaxInt)

	require.Equal(t, root.depth, f.StateDepth(), "frontier StateDepth diverged from physical depth")
	require.Len(t, root.trail, f.StateDepth(), "physical depth diverged from trail length")
}
