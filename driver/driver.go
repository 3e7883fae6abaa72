// Package driver implements the line-oriented external interface:
// reading commands one per line, dispatching to mapops, and reporting
// per-line success/failure the same way the original interface did —
// "ERROR <n>" on a failure, silence on success, and an immediate,
// irrecoverable shutdown on a critical failure (never used across this
// module's verbs, which have no fallible allocation step distinct from
// validation, but the distinction is kept since it's part of the wire
// contract).
//
// Grounded on original_source/src/text_interface.c
// (parseAndExecuteTextLine, runMapInterface, the per-command
// executeXxx helpers). Structured diagnostic logging (as opposed to the
// wire-format "ERROR <n>" line, which is output, not a log) uses
// zerolog, matching this module's ambient logging convention.
package driver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/piotrjasinski/roadmap/mapops"
	"github.com/piotrjasinski/roadmap/routedesc"
)

// Driver dispatches text commands against a single mapops.Ops.
type Driver struct {
	ops *mapops.Ops
	log zerolog.Logger
}

// New wraps ops for line-oriented command dispatch. log receives
// structured per-line diagnostics; it does not receive the wire-format
// output, which is written to the io.Writer passed to Run.
func New(ops *mapops.Ops, log zerolog.Logger) *Driver {
	return &Driver{ops: ops, log: log}
}

// status mirrors the original interface's three-way result.
type status int

const (
	statusSuccess status = iota
	statusError
	statusCritical
)

// Run reads commands from in, one per line, writes command output
// (e.g. getRouteDescription's result) to out, and writes "ERROR <n>"
// for the nth line that failed to stderr. It returns once in is
// exhausted or a critical failure occurs.
func (d *Driver) Run(in io.Reader, out, stderr io.Writer) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		st := d.dispatch(line, out)
		switch st {
		case statusError:
			fmt.Fprintf(stderr, "ERROR %d\n", lineNo)
			d.log.Debug().Int("line", lineNo).Str("text", line).Msg("command rejected")
		case statusCritical:
			d.log.Error().Int("line", lineNo).Msg("critical failure, shutting down")
			return
		}
	}
}

// dispatch parses and executes a single line, grounded on
// parseAndExecuteTextLine.
func (d *Driver) dispatch(line string, out io.Writer) status {
	if line == "" || strings.HasPrefix(line, "#") {
		return statusSuccess
	}
	if strings.HasSuffix(line, ";") {
		return statusError
	}

	fields := strings.Split(line, ";")
	command := fields[0]
	args := fields[1:]

	switch command {
	case "addRoad":
		return d.executeAddRoad(args)
	case "repairRoad":
		return d.executeRepairRoad(args)
	case "removeRoad":
		return d.executeRemoveRoad(args)
	case "removeRoute":
		return d.executeRemoveRoute(args)
	case "extendRoute":
		return d.executeExtendRoute(args)
	case "newRoute":
		return d.executeNewRoute(args)
	case "getRouteDescription":
		return d.executeGetRouteDescription(args, out)
	}

	routeID, err := strconv.Atoi(command)
	if err != nil || routeID < 1 || routeID > 999 {
		return statusError
	}

	return d.executeBuildRoute(routeID, args)
}

func (d *Driver) executeAddRoad(args []string) status {
	if len(args) != 4 {
		return statusError
	}
	length, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return statusError
	}
	year, err := routedesc.ParseYear(args[3])
	if err != nil {
		return statusError
	}
	if err := d.ops.AddRoad(args[0], args[1], uint32(length), year); err != nil {
		return statusError
	}

	return statusSuccess
}

func (d *Driver) executeRepairRoad(args []string) status {
	if len(args) != 3 {
		return statusError
	}
	year, err := routedesc.ParseYear(args[2])
	if err != nil {
		return statusError
	}
	if err := d.ops.RepairRoad(args[0], args[1], year); err != nil {
		return statusError
	}

	return statusSuccess
}

func (d *Driver) executeRemoveRoad(args []string) status {
	if len(args) != 2 {
		return statusError
	}
	if err := d.ops.RemoveRoad(args[0], args[1]); err != nil {
		return statusError
	}

	return statusSuccess
}

func (d *Driver) executeRemoveRoute(args []string) status {
	if len(args) != 1 {
		return statusError
	}
	routeID, err := strconv.Atoi(args[0])
	if err != nil {
		return statusError
	}
	if err := d.ops.RemoveRoute(routeID); err != nil {
		return statusError
	}

	return statusSuccess
}

func (d *Driver) executeExtendRoute(args []string) status {
	if len(args) != 2 {
		return statusError
	}
	routeID, err := strconv.Atoi(args[0])
	if err != nil {
		return statusError
	}
	if err := d.ops.ExtendRoute(routeID, args[1]); err != nil {
		return statusError
	}

	return statusSuccess
}

func (d *Driver) executeNewRoute(args []string) status {
	if len(args) != 3 {
		return statusError
	}
	routeID, err := strconv.Atoi(args[0])
	if err != nil {
		return statusError
	}
	if err := d.ops.NewRoute(routeID, args[1], args[2]); err != nil {
		return statusError
	}

	return statusSuccess
}

func (d *Driver) executeGetRouteDescription(args []string, out io.Writer) status {
	if len(args) != 1 {
		return statusError
	}
	routeID, err := strconv.Atoi(args[0])
	if err != nil {
		return statusError
	}
	desc, err := d.ops.DescribeRoute(routeID)
	if err != nil {
		return statusError
	}
	fmt.Fprintln(out, desc)

	return statusSuccess
}

// executeBuildRoute handles a bare numeric routeId line, the original
// interface's route-description creation command:
// routeId;city;length;year;city;...;city
func (d *Driver) executeBuildRoute(routeID int, args []string) status {
	if len(args) == 0 {
		return statusError
	}

	desc, err := routedesc.Parse(strconv.Itoa(routeID) + ";" + strings.Join(args, ";"))
	if err != nil {
		return statusError
	}
	if err := d.ops.BuildRouteFromDescription(desc); err != nil {
		return statusError
	}

	return statusSuccess
}
