package fifo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cjxgm/fifo-map/fifo"
)

func newStrategyContainer(hash func(int) uint64) *fifo.Container[int, int] {
	return fifo.New[int, int](func(element int) int {
		return element
	}, fifo.WithStrategy(hash, nil))
}

func TestStrategyIndex_MatchesNativeIndex(t *testing.T) {
	native := newIntContainer()
	hashed := newStrategyContainer(func(key int) uint64 {
		return uint64(key) * 0x9e3779b97f4a7c15
	})

	// replay the same operation sequence on both containers and require the
	// observable state to stay identical.
	for i := 0; i < 300; i++ {
		native.PushBack(i % 100)
		hashed.PushBack(i % 100)

		if i%3 == 0 {
			native.Delete(i % 50)
			hashed.Delete(i % 50)
		}
	}

	require.Equal(t, native.Size(), hashed.Size())
	require.Equal(t, collect(native), collect(hashed))
	requireBijection(t, hashed)
}

func TestStrategyIndex_GrowsPastInitialBuckets(t *testing.T) {
	hashed := newStrategyContainer(func(key int) uint64 {
		return uint64(key) * 0x9e3779b97f4a7c15
	})

	// way beyond the initial bucket capacity, forcing several rehashes.
	for i := 0; i < 10_000; i++ {
		hashed.PushBack(i)
	}
	require.Equal(t, 10_000, hashed.Size())

	for i := 0; i < 10_000; i += 2 {
		require.True(t, hashed.Delete(i))
	}
	require.Equal(t, 5_000, hashed.Size())
	requireBijection(t, hashed)
}

func TestStrategyIndex_SurvivesConstantHash(t *testing.T) {
	// a degenerate strategy that puts every key into the same bucket must
	// still be correct, only slower.
	hashed := newStrategyContainer(func(int) uint64 {
		return 42
	})

	for i := 0; i < 100; i++ {
		hashed.PushBack(i)
	}
	require.Equal(t, 100, hashed.Size())

	require.True(t, hashed.Delete(0))
	require.True(t, hashed.Delete(50))
	require.True(t, hashed.Delete(99))
	require.False(t, hashed.Delete(100))

	require.Equal(t, 97, hashed.Size())
	requireBijection(t, hashed)
}

func TestStrategyIndex_CustomEquality(t *testing.T) {
	// keys equal modulo 10 are the same key; the first spelling wins.
	container := fifo.New[int, int](func(element int) int {
		return element
	}, fifo.WithStrategy(
		func(key int) uint64 { return uint64(key % 10) },
		func(a, b int) bool { return a%10 == b%10 },
	))

	_, inserted := container.PushBack(3)
	require.True(t, inserted)

	position, inserted := container.PushBack(13)
	require.False(t, inserted)
	require.Equal(t, 3, position.Entry())

	require.True(t, container.Delete(23))
	require.True(t, container.IsEmpty())
}

func TestStrategyIndex_ClearResetsBuckets(t *testing.T) {
	hashed := newStrategyContainer(func(key int) uint64 {
		return uint64(key)
	})

	for i := 0; i < 1_000; i++ {
		hashed.PushBack(i)
	}
	hashed.Clear()
	require.True(t, hashed.IsEmpty())

	hashed.PushBack(1)
	require.Equal(t, []int{1}, collect(hashed))
	requireBijection(t, hashed)
}
