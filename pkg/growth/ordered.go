package growth

import "github.com/dd0wney/panacus-go/pkg/abacus"

// OrderedCurve is the growth curve produced by walking groups in an
// explicit order rather than folding a histogram (spec §4.5 "Ordered
// growth"). Like Curve, it carries one Values row per requested
// (coverage[p], quorum[p]) pair (spec.md:17,:108,:133: -q/-l are shared,
// broadcastable lists for every subcommand, ordered-histgrowth included).
type OrderedCurve struct {
	Order    []int // group ids in evaluation order, length G
	Coverage []Threshold
	Quorum   []Threshold
	Values   [][]float64 // Values[p][m-1] is the count at prefix size m for pair p
}

// FromByGroupOrdered computes, for every (coverage[p], quorum[p]) pair and
// every prefix length m = 1..len(order), the number of items whose count
// of groups within the first m of order meets
// max(coverage[p].Resolve(m), quorum[p].Resolve(m)) (spec §4.5 "Ordered
// growth"). order must be a permutation of by.Groups' indices; callers
// resolve the --order/subset/GFA-path precedence and pass the resulting
// permutation. coverage and quorum must have equal, non-zero length.
//
// Unlike FromHistogram's pairs, which each require an independent
// log-binomial sum over k and so are worth evaluating on separate
// goroutines, every pair here shares the same O(n) per-prefix threshold
// count against one running per-item coverage total; the pairs are
// evaluated together within a single sequential pass over m rather than
// fanned out to a worker pool.
func FromByGroupOrdered(by *abacus.AbacusByGroup, order []int, coverage, quorum []Threshold) *OrderedCurve {
	g := len(order)
	n := len(by.R) - 1
	numPairs := len(coverage)

	itemsOf := invertCSR(by, g)
	runningCount := make([]int, n)

	values := make([][]float64, numPairs)
	for p := range values {
		values[p] = make([]float64, g)
	}

	for m := 1; m <= g; m++ {
		for _, item := range itemsOf[order[m-1]] {
			runningCount[item]++
		}
		for p := 0; p < numPairs; p++ {
			t := max(coverage[p].Resolve(m), quorum[p].Resolve(m))
			var above int
			for i := 0; i < n; i++ {
				if runningCount[i] >= t {
					above++
				}
			}
			values[p][m-1] = float64(above)
		}
	}
	return &OrderedCurve{Order: order, Coverage: coverage, Quorum: quorum, Values: values}
}

// invertCSR builds, for each group id, the list of item indices whose row
// contains it — the reverse of AbacusByGroup's item→groups CSR, letting
// each growth step touch only the items the newly-included group covers.
func invertCSR(by *abacus.AbacusByGroup, g int) [][]int {
	itemsOf := make([][]int, g)
	n := len(by.R) - 1
	for i := 0; i < n; i++ {
		for _, gid := range by.Row(i) {
			itemsOf[gid] = append(itemsOf[gid], i)
		}
	}
	return itemsOf
}
