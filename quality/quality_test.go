package quality_test

import (
	"testing"

	"github.com/katalvlaran/treesearch/quality"
	"github.com/stretchr/testify/require"
)

func TestMinimizeIsBetter(t *testing.T) {
	a := quality.Min(3)
	b := quality.Min(5)
	require.True(t, a.IsBetter(b), "3 should be better (smaller) than 5 under Minimize")
	require.False(t, b.IsBetter(a), "5 should not be better than 3 under Minimize")
}

func TestMaximizeIsBetter(t *testing.T) {
	a := quality.Max(5)
	b := quality.Max(3)
	require.True(t, a.IsBetter(b), "5 should be better (larger) than 3 under Maximize")
	require.False(t, b.IsBetter(a), "3 should not be better than 5 under Maximize")
}

func TestIsBetterOrEqual(t *testing.T) {
	a := quality.Min(3)
	b := quality.Min(3)
	require.True(t, a.IsBetterOrEqual(b), "equal values should be better-or-equal")
	require.False(t, a.IsBetter(b), "equal values should not be strictly better")
}

func TestFloatQuality(t *testing.T) {
	a := quality.Max(1.5)
	b := quality.Max(1.4999)
	require.True(t, a.IsBetter(b), "1.5 should be better than 1.4999 under Maximize")
}
