package ordermap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrjasinski/roadmap/ordermap"
)

func TestInsertDoesNotReplace(t *testing.T) {
	m := ordermap.New[string, int]()

	require.True(t, m.Insert("a", 1))
	require.False(t, m.Insert("a", 2))

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestOrderedIteration(t *testing.T) {
	m := ordermap.New[string, int]()
	m.Insert("b", 2)
	m.Insert("a", 1)
	m.Insert("c", 3)

	require.Equal(t, []string{"a", "b", "c"}, m.KeysInOrder())
	require.Equal(t, []int{1, 2, 3}, m.ValuesInOrder())
}

func TestRemoveAndContains(t *testing.T) {
	m := ordermap.New[string, int]()
	m.Insert("a", 1)

	require.True(t, m.Contains("a"))
	require.True(t, m.Remove("a"))
	require.False(t, m.Remove("a"))
	require.False(t, m.Contains("a"))
}

func TestClone(t *testing.T) {
	m := ordermap.New[string, int]()
	m.Insert("a", 1)

	clone := m.Clone()
	clone.Insert("b", 2)

	require.Equal(t, 1, m.Len())
	require.Equal(t, 2, clone.Len())
}
