// Package routedesc formats and parses the route description grammar:
//
//	routeId;city1;length1;year1;city2;length2;year2;city3;...;cityN
//
// one city between each adjacent pair of (length;year) fields, running
// from the route's first city to its last. Grounded on
// original_source/src/route.c (fillRouteDescription,
// getRouteDescriptionLength) for field order, and on the teacher's
// core/methods_edges.go nextEdgeID for the "build into a []byte buffer
// with strconv.Append*, skip fmt on the hot path" idiom.
package routedesc

import (
	"errors"
	"strconv"
	"strings"
)

// Errors returned by Parse.
var (
	ErrMalformed    = errors.New("routedesc: malformed description")
	ErrBadRouteID   = errors.New("routedesc: route id is not a valid integer")
	ErrBadLength    = errors.New("routedesc: length is not a valid non-negative integer")
	ErrBadYear      = errors.New("routedesc: year is not a valid integer")
	ErrTooFewFields = errors.New("routedesc: fewer than two cities")
)

// Segment is one road on a described route: the length and year of the
// road leading INTO City (City is the road's far endpoint from the
// previous segment, or the route's first city for Segments[0]).
type Segment struct {
	City   string
	Length uint32 // 0 for the first segment, which names only the start city
	Year   int32  // 0 for the first segment
}

// Description is a fully parsed route description.
type Description struct {
	RouteID  int
	Segments []Segment // Segments[0].City is the route's first city
}

// Format serializes desc into the wire grammar. It never fails: callers
// are expected to have validated desc's fields already (mapops does,
// via validate, before ever constructing a Description).
func Format(desc Description) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(desc.RouteID))

	for i, seg := range desc.Segments {
		if i > 0 {
			b.WriteByte(';')
			b.WriteString(strconv.FormatUint(uint64(seg.Length), 10))
			b.WriteByte(';')
			b.WriteString(strconv.FormatInt(int64(seg.Year), 10))
		}
		b.WriteByte(';')
		b.WriteString(seg.City)
	}

	return b.String()
}

// ParseYear parses a year field, rejecting a leading '+' that
// strconv.ParseInt would otherwise silently accept — the wire grammar
// allows a leading '-' but never a '+'.
func ParseYear(s string) (int32, error) {
	if strings.HasPrefix(s, "+") {
		return 0, strconv.ErrSyntax
	}
	year, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}

	return int32(year), nil
}

// Parse parses a route description of the form
// "routeId;city;length;year;city;...;city" (an empty string is an
// unparseable input here; an empty ROUTE is represented upstream by
// mapops.DescribeRoute returning "" for an unoccupied slot,
// which is a distinct concept Parse does not need to model).
func Parse(s string) (Description, error) {
	fields := strings.Split(s, ";")
	if len(fields) < 2 {
		return Description{}, ErrMalformed
	}

	routeID, err := strconv.Atoi(fields[0])
	if err != nil {
		return Description{}, ErrBadRouteID
	}

	rest := fields[1:]
	// rest is: city, (length, year, city)*
	if len(rest) == 0 || (len(rest)-1)%3 != 0 {
		return Description{}, ErrMalformed
	}

	segments := []Segment{{City: rest[0]}}
	for i := 1; i < len(rest); i += 3 {
		length, err := strconv.ParseUint(rest[i], 10, 32)
		if err != nil {
			return Description{}, ErrBadLength
		}
		year, err := ParseYear(rest[i+1])
		if err != nil {
			return Description{}, ErrBadYear
		}
		city := rest[i+2]
		segments = append(segments, Segment{City: city, Length: uint32(length), Year: year})
	}

	if len(segments) < 2 {
		return Description{}, ErrTooFewFields
	}

	return Description{RouteID: routeID, Segments: segments}, nil
}
