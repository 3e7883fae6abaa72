package heap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrjasinski/roadmap/heap"
)

func TestPopOrdersByLengthThenYear(t *testing.T) {
	h := heap.New(4)
	h.FillFrom([]string{"A", "B", "C"})

	require.True(t, h.DecreaseKey("A", heap.Key{Length: 5, Year: 1990}))
	require.True(t, h.DecreaseKey("B", heap.Key{Length: 5, Year: 2000}))
	require.True(t, h.DecreaseKey("C", heap.Key{Length: 1, Year: 1950}))

	name, key, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, "C", name)
	require.EqualValues(t, 1, key.Length)

	name, key, ok = h.Pop()
	require.True(t, ok)
	require.Equal(t, "B", name)
	require.EqualValues(t, 2000, key.Year)

	name, _, ok = h.Pop()
	require.True(t, ok)
	require.Equal(t, "A", name)

	_, _, ok = h.Pop()
	require.False(t, ok)
}

func TestDecreaseKeyRejectsWorse(t *testing.T) {
	h := heap.New(2)
	h.FillFrom([]string{"A"})

	require.True(t, h.DecreaseKey("A", heap.Key{Length: 10, Year: 2000}))
	require.False(t, h.DecreaseKey("A", heap.Key{Length: 20, Year: 2020}))

	key, ok := h.KeyOf("A")
	require.True(t, ok)
	require.EqualValues(t, 10, key.Length)
}

func TestExcludeIsPermanent(t *testing.T) {
	h := heap.New(4)
	h.FillFrom([]string{"A", "B"})
	h.Exclude("A")

	require.False(t, h.Contains("A"))
	require.False(t, h.DecreaseKey("A", heap.Key{Length: 1, Year: 1}))

	h.FillFrom([]string{"A"})
	require.False(t, h.Contains("A"))

	require.Equal(t, 1, h.Len())
}

func TestInfSentinelIsMinIdentityForYear(t *testing.T) {
	require.EqualValues(t, math.MaxInt32, heap.Inf.Year)

	better := heap.Key{Length: 3, Year: 1999}
	require.True(t, better.Less(heap.Inf))
}
