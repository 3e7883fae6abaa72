package mapops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/mapops"
	"github.com/piotrjasinski/roadmap/routedesc"
)

func TestAddRoadCreatesMissingCitiesAndRollsBackOnFailure(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)

	require.NoError(t, ops.AddRoad("A", "B", 10, 1990))
	require.Equal(t, 2, m.CityCount())

	err := ops.AddRoad("A", "B", 5, 2000)
	require.ErrorIs(t, err, core.ErrRoadExists)
	require.Equal(t, 2, m.CityCount())
}

func TestAddRoadRollsBackSecondCityOnBadLength(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)

	err := ops.AddRoad("A", "B", 0, 1990)
	require.Error(t, err)
	require.Equal(t, 0, m.CityCount())
}

func TestNewRouteAndDescribe(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)
	require.NoError(t, ops.AddRoad("A", "B", 10, 1990))
	require.NoError(t, ops.AddRoad("B", "C", 5, 2000))

	require.NoError(t, ops.NewRoute(1, "A", "C"))

	desc, err := ops.DescribeRoute(1)
	require.NoError(t, err)
	require.Equal(t, "1;A;10;1990;B;5;2000;C", desc)
}

func TestDescribeRouteEmptySlot(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)

	desc, err := ops.DescribeRoute(42)
	require.NoError(t, err)
	require.Equal(t, "", desc)
}

func TestRemoveRoadReroutesRoute(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)
	require.NoError(t, ops.AddRoad("A", "B", 9, 1990))
	require.NoError(t, ops.AddRoad("A", "C", 5, 1990))
	require.NoError(t, ops.AddRoad("C", "B", 5, 1990))

	require.NoError(t, ops.NewRoute(1, "A", "B"))

	require.NoError(t, ops.RemoveRoad("A", "B"))

	desc, err := ops.DescribeRoute(1)
	require.NoError(t, err)
	require.Equal(t, "1;A;5;1990;C;5;1990;B", desc)
}

func TestRemoveRouteLeavesRoadsIntact(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)
	require.NoError(t, ops.AddRoad("A", "B", 10, 1990))
	require.NoError(t, ops.NewRoute(1, "A", "B"))

	require.NoError(t, ops.RemoveRoute(1))

	_, ok := m.Route(1)
	require.False(t, ok)
	a, _ := m.City("A")
	require.Equal(t, 1, a.Degree())
}

func TestBuildRouteFromDescriptionCreatesAndRollsBack(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)

	desc := routedesc.Description{
		RouteID: 3,
		Segments: []routedesc.Segment{
			{City: "X"},
			{City: "Y", Length: 5, Year: 2000},
			{City: "Z", Length: 5, Year: 2000},
		},
	}
	require.NoError(t, ops.BuildRouteFromDescription(desc))
	require.Equal(t, 3, m.CityCount())

	got, err := ops.DescribeRoute(3)
	require.NoError(t, err)
	require.Equal(t, "3;X;5;2000;Y;5;2000;Z", got)

	badDesc := routedesc.Description{
		RouteID: 4,
		Segments: []routedesc.Segment{
			{City: "P"},
			{City: "Q", Length: 0, Year: 2000},
		},
	}
	err = ops.BuildRouteFromDescription(badDesc)
	require.Error(t, err)
	require.Equal(t, 3, m.CityCount())
}

func TestBuildRouteFromDescriptionRejectsRevisitedCity(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)

	desc := routedesc.Description{
		RouteID: 1,
		Segments: []routedesc.Segment{
			{City: "A"},
			{City: "B", Length: 1, Year: 10},
			{City: "A", Length: 1, Year: 10},
		},
	}
	err := ops.BuildRouteFromDescription(desc)
	require.ErrorIs(t, err, mapops.ErrRouteRevisitsCity)
	require.Equal(t, 0, m.CityCount())
	require.False(t, m.HasCity("A"))
	require.False(t, m.HasCity("B"))
}

func TestBuildRouteFromDescriptionRejectsLengthConflict(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)
	require.NoError(t, ops.AddRoad("A", "B", 10, 1990))

	desc := routedesc.Description{
		RouteID: 1,
		Segments: []routedesc.Segment{
			{City: "A"},
			{City: "B", Length: 20, Year: 2000},
		},
	}
	err := ops.BuildRouteFromDescription(desc)
	require.ErrorIs(t, err, mapops.ErrRoadLengthMismatch)

	road, ok := func() (*core.Road, bool) {
		c, _ := m.City("A")
		return c.RoadTo("B")
	}()
	require.True(t, ok)
	require.Equal(t, uint32(10), road.Length)
	require.Equal(t, int32(1990), road.Year)
}

func TestBuildRouteFromDescriptionRejectsYearRegressionAndAppliesRepair(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)
	require.NoError(t, ops.AddRoad("A", "B", 10, 1990))

	regressed := routedesc.Description{
		RouteID: 1,
		Segments: []routedesc.Segment{
			{City: "A"},
			{City: "B", Length: 10, Year: 1980},
		},
	}
	err := ops.BuildRouteFromDescription(regressed)
	require.ErrorIs(t, err, core.ErrYearRegression)
	c, _ := m.City("A")
	road, _ := c.RoadTo("B")
	require.Equal(t, int32(1990), road.Year)

	repaired := routedesc.Description{
		RouteID: 2,
		Segments: []routedesc.Segment{
			{City: "A"},
			{City: "B", Length: 10, Year: 2010},
		},
	}
	require.NoError(t, ops.BuildRouteFromDescription(repaired))
	require.Equal(t, int32(2010), road.Year)
}

func TestExtendRouteChoosesBetterEnd(t *testing.T) {
	m := core.NewMap()
	ops := mapops.New(m)
	require.NoError(t, ops.AddRoad("A", "B", 10, 1990))
	require.NoError(t, ops.NewRoute(1, "A", "B"))

	require.NoError(t, ops.AddRoad("B", "C", 3, 2000))
	require.NoError(t, ops.AddRoad("A", "D", 100, 2000))

	require.NoError(t, ops.ExtendRoute(1, "C"))

	desc, err := ops.DescribeRoute(1)
	require.NoError(t, err)
	require.Equal(t, "1;A;10;1990;B;3;2000;C", desc)
}
