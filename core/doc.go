// Package core: see types.go for the data model and SPEC_FULL.md §3 for
// the invariants it exists to uphold (at most one road per city pair, a
// fixed 999-slot route catalog, routes as ordered road sequences).
package core
