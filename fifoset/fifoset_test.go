package fifoset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cjxgm/fifo-map/fifohash"
	"github.com/cjxgm/fifo-map/fifoset"
)

func TestNew(t *testing.T) {
	fifoSet := fifoset.New(1, 2, 3, 2)

	require.Equal(t, 3, fifoSet.Size())
	require.False(t, fifoSet.IsEmpty())
	require.Equal(t, []int{1, 2, 3}, fifoSet.ToSlice())

	empty := fifoset.New[int]()
	require.True(t, empty.IsEmpty())
}

func TestFIFOSet_AddHasDelete(t *testing.T) {
	fifoSet := fifoset.New[string]()

	require.True(t, fifoSet.Add("a"))
	require.False(t, fifoSet.Add("a"))
	require.True(t, fifoSet.Has("a"))
	require.Equal(t, 1, fifoSet.Count("a"))
	require.Equal(t, 0, fifoSet.Count("b"))

	require.True(t, fifoSet.Delete("a"))
	require.False(t, fifoSet.Delete("a"))
	require.False(t, fifoSet.Has("a"))
	require.True(t, fifoSet.IsEmpty())
}

func TestFIFOSet_AddFront(t *testing.T) {
	fifoSet := fifoset.New[string]()

	fifoSet.Add("X")
	require.True(t, fifoSet.AddFront("Y"))

	require.Equal(t, []string{"Y", "X"}, fifoSet.ToSlice())

	head, exists := fifoSet.Head()
	require.True(t, exists)
	require.Equal(t, "Y", head)

	tail, exists := fifoSet.Tail()
	require.True(t, exists)
	require.Equal(t, "X", tail)

	// a present element keeps its position.
	require.False(t, fifoSet.AddFront("X"))
	require.Equal(t, []string{"Y", "X"}, fifoSet.ToSlice())
}

func TestFIFOSet_AddFrontIntoEmpty(t *testing.T) {
	fifoSet := fifoset.New[string]()

	require.True(t, fifoSet.AddFront("only"))
	require.Equal(t, []string{"only"}, fifoSet.ToSlice())

	fifoSet.Add("second")
	require.Equal(t, []string{"only", "second"}, fifoSet.ToSlice())
}

func TestFIFOSet_IterationFollowsInsertionOrder(t *testing.T) {
	fifoSet := fifoset.New(3, 1, 4, 1, 5, 9, 2, 6)

	require.Equal(t, []int{3, 1, 4, 5, 9, 2, 6}, fifoSet.ToSlice())

	// deleting and re-adding moves the element to the tail.
	require.True(t, fifoSet.Delete(3))
	require.True(t, fifoSet.Add(3))
	require.Equal(t, []int{1, 4, 5, 9, 2, 6, 3}, fifoSet.ToSlice())
}

func TestFIFOSet_Clone(t *testing.T) {
	fifoSet := fifoset.New("a", "b", "c", "d")
	fifoSet.AddFront("front")

	// cloning replays the elements through back insertion; the order of the
	// copy must still equal the order of the source.
	cloned := fifoSet.Clone()
	require.Equal(t, fifoSet.ToSlice(), cloned.ToSlice())
	require.Equal(t, []string{"front", "a", "b", "c", "d"}, cloned.ToSlice())

	// the copy is independent of the source.
	cloned.Delete("b")
	require.True(t, fifoSet.Has("b"))
	require.Equal(t, []string{"front", "a", "c", "d"}, cloned.ToSlice())
}

func TestFIFOSet_DeleteAt(t *testing.T) {
	fifoSet := fifoset.New(1, 2, 3)

	position, exists := fifoSet.Find(2)
	require.True(t, exists)

	fifoSet.DeleteAt(position)
	require.Equal(t, []int{1, 3}, fifoSet.ToSlice())

	require.Panics(t, func() {
		fifoSet.DeleteAt(position)
	})
}

func TestFIFOSet_ForEachAbort(t *testing.T) {
	fifoSet := fifoset.New(1, 2, 3)

	visited := 0
	completed := fifoSet.ForEach(func(element int) bool {
		visited++

		return visited < 2
	})
	require.False(t, completed)
	require.Equal(t, 2, visited)
}

func TestFIFOSet_Clear(t *testing.T) {
	fifoSet := fifoset.New(1, 2, 3)

	fifoSet.Clear()
	require.True(t, fifoSet.IsEmpty())

	fifoSet.Add(4)
	require.Equal(t, []int{4}, fifoSet.ToSlice())
}

func TestFIFOSet_Move(t *testing.T) {
	fifoSet := fifoset.New(1, 2)

	moved := fifoSet.Move()
	require.Equal(t, []int{1, 2}, moved.ToSlice())

	require.True(t, fifoSet.IsEmpty())
	fifoSet.Add(3)
	require.Equal(t, []int{3}, fifoSet.ToSlice())
}

func TestFIFOSet_WithStrategy(t *testing.T) {
	hash, equals := fifohash.CaseInsensitiveString[string]()
	fifoSet := fifoset.NewWithStrategy(hash, equals)

	require.True(t, fifoSet.Add("Hello"))
	require.False(t, fifoSet.Add("HELLO"))
	require.True(t, fifoSet.Has("hello"))

	// the first spelling decides what iteration yields.
	require.Equal(t, []string{"Hello"}, fifoSet.ToSlice())
}

func TestFIFOSet_String(t *testing.T) {
	fifoSet := fifoset.New("element")

	humanReadable := fifoSet.String()
	require.Contains(t, humanReadable, "FIFOSet")
	require.Contains(t, humanReadable, "element")
}
