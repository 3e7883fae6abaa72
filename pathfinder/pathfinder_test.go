package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/pathfinder"
)

func line(t *testing.T) *core.Map {
	t.Helper()
	m := core.NewMap()
	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := m.AddCity(name)
		require.NoError(t, err)
	}
	_, err := m.AddRoad("A", "B", 5, 2000)
	require.NoError(t, err)
	_, err = m.AddRoad("B", "C", 5, 2000)
	require.NoError(t, err)
	_, err = m.AddRoad("C", "D", 5, 2000)
	require.NoError(t, err)

	return m
}

func TestFindBestPathShortestOfSeveral(t *testing.T) {
	m := line(t)
	_, err := m.AddRoad("A", "D", 100, 2000)
	require.NoError(t, err)

	path, err := pathfinder.FindBestPath(m, "A", "D", pathfinder.Options{AllowDirect: true})
	require.NoError(t, err)
	require.Len(t, path.Roads, 3)
}

func TestFindBestPathNoConnection(t *testing.T) {
	m := core.NewMap()
	_, _ = m.AddCity("A")
	_, _ = m.AddCity("B")

	_, err := pathfinder.FindBestPath(m, "A", "B", pathfinder.Options{AllowDirect: true})
	require.ErrorIs(t, err, pathfinder.ErrNoPath)
}

func TestFindBestPathRejectsSameCity(t *testing.T) {
	m := line(t)
	_, err := pathfinder.FindBestPath(m, "A", "A", pathfinder.Options{AllowDirect: true})
	require.ErrorIs(t, err, pathfinder.ErrSameCity)
}

func TestFindBestPathSuppressesDirectRoad(t *testing.T) {
	m := core.NewMap()
	for _, name := range []string{"A", "B", "C"} {
		_, _ = m.AddCity(name)
	}
	direct, err := m.AddRoad("A", "B", 1, 2000)
	require.NoError(t, err)
	_, err = m.AddRoad("A", "C", 5, 2000)
	require.NoError(t, err)
	_, err = m.AddRoad("C", "B", 5, 2000)
	require.NoError(t, err)

	path, err := pathfinder.FindBestPath(m, "A", "B", pathfinder.Options{DirectRoad: direct})
	require.NoError(t, err)
	require.Len(t, path.Roads, 2)
}

func TestIsPathUniqueDetectsAmbiguity(t *testing.T) {
	m := core.NewMap()
	for _, name := range []string{"A", "B", "C"} {
		_, _ = m.AddCity(name)
	}
	_, err := m.AddRoad("A", "B", 10, 2000)
	require.NoError(t, err)
	_, err = m.AddRoad("A", "C", 5, 2000)
	require.NoError(t, err)
	_, err = m.AddRoad("C", "B", 5, 2000)
	require.NoError(t, err)

	path, err := pathfinder.FindBestPath(m, "A", "B", pathfinder.Options{AllowDirect: true})
	require.NoError(t, err)

	require.False(t, pathfinder.IsPathUnique(m, path, pathfinder.Options{AllowDirect: true}))
}

func TestIsPathUniqueAcceptsStrictlyBest(t *testing.T) {
	m := line(t)

	path, err := pathfinder.FindBestPath(m, "A", "D", pathfinder.Options{AllowDirect: true})
	require.NoError(t, err)
	require.True(t, pathfinder.IsPathUnique(m, path, pathfinder.Options{AllowDirect: true}))
}
