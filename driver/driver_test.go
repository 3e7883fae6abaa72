package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/piotrjasinski/roadmap/core"
	"github.com/piotrjasinski/roadmap/driver"
	"github.com/piotrjasinski/roadmap/mapops"
)

func newDriver() (*driver.Driver, *mapops.Ops) {
	m := core.NewMap()
	ops := mapops.New(m)

	return driver.New(ops, zerolog.Nop()), ops
}

func TestDriverAddRoadAndDescribeRoute(t *testing.T) {
	d, _ := newDriver()

	script := "addRoad;A;B;10;1990\naddRoad;B;C;5;2000\n1;A;10;1990;B\ngetRouteDescription;1\n"
	var out, errOut bytes.Buffer
	d.Run(strings.NewReader(script), &out, &errOut)

	require.Equal(t, "", errOut.String())
	require.Equal(t, "1;A;10;1990;B\n", out.String())
}

func TestDriverRejectsTrailingSemicolon(t *testing.T) {
	d, _ := newDriver()

	var out, errOut bytes.Buffer
	d.Run(strings.NewReader("addRoad;A;B;10;1990;\n"), &out, &errOut)

	require.Equal(t, "ERROR 1\n", errOut.String())
}

func TestDriverSkipsCommentsAndBlankLines(t *testing.T) {
	d, _ := newDriver()

	var out, errOut bytes.Buffer
	d.Run(strings.NewReader("# a comment\n\naddRoad;A;B;10;1990\n"), &out, &errOut)

	require.Equal(t, "", errOut.String())
}

func TestDriverReportsErrorLineNumbers(t *testing.T) {
	d, _ := newDriver()

	var out, errOut bytes.Buffer
	d.Run(strings.NewReader("addRoad;A;B;10;1990\nbogusCommand\naddRoad;A;B;5;2000\n"), &out, &errOut)

	require.Equal(t, "ERROR 2\nERROR 3\n", errOut.String())
}
