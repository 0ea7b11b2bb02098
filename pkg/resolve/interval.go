// Package resolve implements the Auxiliary Resolver (spec §4.2): it turns
// user-supplied subset/exclusion/groupby files into per-path interval lists
// and a path→group assignment that the Abacus Builder consumes.
package resolve

import "sort"

// Interval is a half-open base-pair range [Start, End).
type Interval struct {
	Start int
	End   int
}

// FullRange is the sentinel interval used when no subset was requested: the
// entire path, unbounded (spec §4.2).
var FullRange = Interval{Start: 0, End: 1 << 62}

func sortIntervals(ivs []Interval) {
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].Start < ivs[j].Start })
}
