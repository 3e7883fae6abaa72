package routedesc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/piotrjasinski/roadmap/routedesc"
)

func TestFormatParseRoundTrip(t *testing.T) {
	desc := routedesc.Description{
		RouteID: 7,
		Segments: []routedesc.Segment{
			{City: "A"},
			{City: "B", Length: 10, Year: 1990},
			{City: "C", Length: 5, Year: 2005},
		},
	}

	s := routedesc.Format(desc)
	require.Equal(t, "7;A;10;1990;B;5;2005;C", s)

	got, err := routedesc.Parse(s)
	require.NoError(t, err)
	require.Equal(t, desc, got)
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := routedesc.Parse("")
	require.Error(t, err)

	_, err = routedesc.Parse("7;A;B;10")
	require.ErrorIs(t, err, routedesc.ErrMalformed)

	_, err = routedesc.Parse("abc;A;B;10;1990")
	require.ErrorIs(t, err, routedesc.ErrBadRouteID)

	_, err = routedesc.Parse("7;A;notanumber;1990;B")
	require.ErrorIs(t, err, routedesc.ErrBadLength)

	_, err = routedesc.Parse("7;OnlyOneCity")
	require.ErrorIs(t, err, routedesc.ErrTooFewFields)
}

func TestParseSingleCityRoute(t *testing.T) {
	got, err := routedesc.Parse("7;OnlyCity")
	require.ErrorIs(t, err, routedesc.ErrTooFewFields)
	require.Equal(t, 0, got.RouteID)
	require.Len(t, got.Segments, 0)
}
