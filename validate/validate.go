// Package validate holds the field-level validators shared by mapops
// and driver: city name syntax, road length/year ranges, and route ID
// bounds. Grounded on original_source/src/utils.c (checkCityName,
// checkYear, checkLength, checkRouteId) and the teacher's
// builder/validators.go, which returns sentinel errors from small,
// single-purpose validator functions rather than inlining checks at
// every call site.
package validate

import (
	"errors"
	"math"
)

// Sentinel errors. Never wrapped with a formatted string at the
// definition site; callers use errors.Is.
var (
	ErrEmptyCityName   = errors.New("validate: city name is empty")
	ErrInvalidCityName = errors.New("validate: city name contains ';' or a control byte")
	ErrBadLength       = errors.New("validate: length must be in [1, 2^32-1]")
	ErrBadYear         = errors.New("validate: year must be non-zero")
	ErrBadRouteID      = errors.New("validate: route id must be in [1, 999]")
)

// MinRouteID and MaxRouteID bound a valid route identifier.
const (
	MinRouteID = 1
	MaxRouteID = 999
)

// CityName reports whether name is a syntactically valid city name: not
// empty, and free of ';' and control bytes (0..31). Grounded on
// original_source/src/utils.c checkCityName.
func CityName(name string) error {
	if name == "" {
		return ErrEmptyCityName
	}
	for i := 0; i < len(name); i++ {
		b := name[i]
		if b == ';' || b < 32 {
			return ErrInvalidCityName
		}
	}

	return nil
}

// Length reports whether length is a valid road length: in [1, 2^32-1].
// Grounded on original_source/src/utils.c checkLength.
func Length(length uint64) error {
	if length == 0 || length > math.MaxUint32 {
		return ErrBadLength
	}

	return nil
}

// Year reports whether year is a valid road year: non-zero. Grounded on
// original_source/src/utils.c checkYear.
func Year(year int32) error {
	if year == 0 {
		return ErrBadYear
	}

	return nil
}

// RouteID reports whether id falls within [MinRouteID, MaxRouteID].
// Grounded on original_source/src/utils.c checkRouteId.
func RouteID(id int) error {
	if id < MinRouteID || id > MaxRouteID {
		return ErrBadRouteID
	}

	return nil
}
