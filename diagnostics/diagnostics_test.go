package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrjasinski/roadmap/diagnostics"
	"github.com/piotrjasinski/roadmap/mapops"

	"github.com/piotrjasinski/roadmap/core"
)

func TestValidatePassesOnConsistentMap(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)
	require.NoError(t, ops.AddRoad("A", "B", 10, 1990))
	require.NoError(t, ops.AddRoad("B", "C", 5, 2000))
	require.NoError(t, ops.NewRoute(1, "A", "C"))

	require.NoError(t, diagnostics.Validate(m))

	summary := diagnostics.Summarize(m)
	require.Equal(t, 3, summary.Cities)
	require.Equal(t, 2, summary.Roads)
	require.Equal(t, 1, summary.Routes)
}

func TestActiveRouteIDs(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)
	require.NoError(t, ops.AddRoad("A", "B", 10, 1990))
	require.NoError(t, ops.NewRoute(7, "A", "B"))

	require.Equal(t, []int{7}, diagnostics.ActiveRouteIDs(m))
}
