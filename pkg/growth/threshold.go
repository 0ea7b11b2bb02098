// Package growth implements the Growth Engine (spec §4.5): converting a
// histogram, or a by-group abacus for the ordered variant, into pan-genome
// growth curves under (coverage, quorum) threshold pairs.
package growth

import "math"

// Threshold is the tagged Absolute/Relative variant from spec §3.
type Threshold struct {
	absolute int
	relative float64
	isRel    bool
}

// Absolute builds a fixed-count coverage threshold.
func Absolute(c int) Threshold { return Threshold{absolute: c} }

// Relative builds a quorum threshold resolved against the prefix size m at
// evaluation time.
func Relative(q float64) Threshold { return Threshold{relative: q, isRel: true} }

// Resolve returns the threshold's integer value at prefix size m: a
// Relative threshold rounds ceil(q*m) (spec §3 Threshold).
func (t Threshold) Resolve(m int) int {
	if !t.isRel {
		return t.absolute
	}
	return int(math.Ceil(t.relative * float64(m)))
}
