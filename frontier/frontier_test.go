package frontier_test

import (
	"testing"

	"github.com/katalvlaran/treesearch/frontier"
	"github.com/stretchr/testify/require"
)

func TestLIFOOrder(t *testing.T) {
	s := frontier.NewLIFO[int]()
	s.Store(1)
	s.Store(2)
	s.Store(3)
	require.EqualValues(t, 3, s.Nodes())

	want := []int{3, 2, 1}
	for _, w := range want {
		got, ok := s.TryGetNext()
		require.True(t, ok)
		require.Equal(t, w, got)
	}
	_, ok := s.TryGetNext()
	require.False(t, ok, "expected empty stack")
}

func TestFIFOOrder(t *testing.T) {
	q := frontier.NewFIFO[int]()
	q.Store(1)
	q.Store(2)
	q.Store(3)
	want := []int{1, 2, 3}
	for _, w := range want {
		got, ok := q.TryGetNext()
		require.True(t, ok)
		require.Equal(t, w, got)
	}
}

func TestBiLevelSwapAndDrain(t *testing.T) {
	b := frontier.NewBiLevelFIFOSeeded(0)
	require.EqualValues(t, 1, b.GetQueueNodes(), "expected seed in get-queue")

	v, ok := b.TryFromGetQueue()
	require.True(t, ok)
	require.Equal(t, 0, v)

	b.ToPutQueue(1)
	b.ToPutQueue(2)
	require.EqualValues(t, 2, b.PutQueueNodes())

	b.SwapQueues()
	require.EqualValues(t, 2, b.GetQueueNodes(), "expected 2 in get-queue after swap")
	require.EqualValues(t, 1, b.RetrievedNodes(), "expected 1 retrieved so far")
}

func TestBiLevelToSingleLevel(t *testing.T) {
	b := frontier.NewBiLevelFIFOSeeded(1)
	b.TryFromGetQueue()
	b.ToPutQueue(2)
	b.ToPutQueue(3)
	merged := b.ToSingleLevel()
	require.EqualValues(t, 2, merged.Nodes())
}

func TestStateCollectionIsDefensiveCopy(t *testing.T) {
	items := []int{1, 2, 3}
	c := frontier.NewStateCollection(items)
	items[0] = 99
	require.NotEqual(t, 99, c.Items()[0], "snapshot must not observe later mutation of source slice")

	out := c.Items()
	out[0] = 42
	require.NotEqual(t, 42, c.Items()[0], "Items() must return a fresh copy each call")
}

func TestStateCollectionLen(t *testing.T) {
	c := frontier.NewStateCollection([]int{1, 2, 3})
	require.Equal(t, 3, c.Len())
}
