package abacus

import "github.com/dd0wney/panacus-go/pkg/resolve"

// cursor walks a sorted, disjoint interval list forward in lockstep with a
// monotonically increasing path offset p (spec §4.3: "Advance a cursor i
// through subsets such that subset[i].end > p always"). A cursor is
// allocated once per path and reused across that path's items.
type cursor struct {
	ivs []resolve.Interval
	idx int
}

func newCursor(ivs []resolve.Interval) *cursor {
	return &cursor{ivs: ivs}
}

func (c *cursor) advance(p int) {
	for c.idx < len(c.ivs) && c.ivs[c.idx].End <= p {
		c.idx++
	}
}

// contains reports full containment of [p, p+l) in the interval at the
// cursor (node/edge semantics: any uncovered overlap disqualifies the
// item, spec §4.3).
func (c *cursor) contains(p, l int) bool {
	c.advance(p)
	if c.idx >= len(c.ivs) {
		return false
	}
	iv := c.ivs[c.idx]
	return iv.Start <= p && p+l <= iv.End
}

// overlap returns the total overlap between [p, p+l) and every interval
// that intersects it (bp semantics: partial coverage contributes its
// overlap amount, spec §4.3).
func (c *cursor) overlap(p, l int) int {
	c.advance(p)
	end := p + l
	total := 0
	for j := c.idx; j < len(c.ivs) && c.ivs[j].Start < end; j++ {
		s := c.ivs[j].Start
		if s < p {
			s = p
		}
		e := c.ivs[j].End
		if e > end {
			e = end
		}
		if e > s {
			total += e - s
		}
	}
	return total
}
