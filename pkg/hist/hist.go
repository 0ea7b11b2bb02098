// Package hist implements the Histogram Engine (spec §4.4): folding a
// by-total abacus into a coverage histogram, and its tab-separated codec.
package hist

import (
	"github.com/dd0wney/panacus-go/pkg/abacus"
	"github.com/dd0wney/panacus-go/pkg/errs"
)

// Hist is the coverage histogram: Coverage[k] is the total weighted count
// of items appearing in exactly k groups (spec §3 Hist). Coverage[0] is,
// by convention, the quantity of items not covered — for bp counting it
// folds in clipped base pairs.
type Hist struct {
	CountType abacus.CountType
	Coverage  []uint64 // length G+1
}

// FromAbacus folds by into a Hist over g groups (spec §4.4 from_abacus).
// Items whose countable entry is the excluded sentinel do not contribute
// anywhere; the overflow sentinel (a real count indistinguishable from a
// reserved bit pattern, only reachable at the 65534-group ceiling) folds
// into the top bucket rather than being silently dropped.
func FromAbacus(by *abacus.AbacusByTotal, g int) *Hist {
	coverage := make([]uint64, g+1)
	for i, c := range by.Countable {
		switch c {
		case errs.SentinelExcluded:
			continue
		case errs.SentinelOverflow:
			coverage[g] += weightOf(by, i)
		default:
			coverage[c] += weightOf(by, i)
		}
	}
	if by.CountType == abacus.CountBp {
		for _, u := range by.UncoveredBp {
			coverage[0] += uint64(u)
		}
	}
	return &Hist{CountType: by.CountType, Coverage: coverage}
}

func weightOf(by *abacus.AbacusByTotal, i int) uint64 {
	if by.CountType != abacus.CountBp {
		return 1
	}
	covered := by.ItemLen[i] - by.UncoveredBp[i]
	return uint64(covered)
}

// Total returns the sum of Coverage[1:], the full pangenome size at
// coverage>=1, q=0 (spec §8 invariant 4's right-hand side).
func (h *Hist) Total() uint64 {
	var sum uint64
	for k := 1; k < len(h.Coverage); k++ {
		sum += h.Coverage[k]
	}
	return sum
}

// Equal reports bit-for-bit equality, used by the TSV round-trip property
// (spec §8 invariant 5).
func (h *Hist) Equal(o *Hist) bool {
	if h.CountType != o.CountType || len(h.Coverage) != len(o.Coverage) {
		return false
	}
	for i, v := range h.Coverage {
		if o.Coverage[i] != v {
			return false
		}
	}
	return true
}
