package abacus

import (
	"testing"

	"github.com/dd0wney/panacus-go/pkg/resolve"
)

func TestCursorContainsFullyWithin(t *testing.T) {
	c := newCursor([]resolve.Interval{{Start: 5, End: 15}})
	if !c.contains(5, 10) {
		t.Fatal("expected full containment")
	}
}

func TestCursorContainsPartialDisqualifies(t *testing.T) {
	c := newCursor([]resolve.Interval{{Start: 5, End: 12}})
	if c.contains(5, 10) {
		t.Fatal("partial overlap must not count as contained")
	}
}

func TestCursorOverlapClamped(t *testing.T) {
	c := newCursor([]resolve.Interval{{Start: 5, End: 15}})
	if got := c.overlap(0, 10); got != 5 {
		t.Fatalf("want 5, got %d", got)
	}
}

func TestCursorAdvancesMonotonically(t *testing.T) {
	c := newCursor([]resolve.Interval{{Start: 0, End: 5}, {Start: 10, End: 20}})
	if c.overlap(0, 5) != 5 {
		t.Fatal("first interval should fully overlap")
	}
	if c.overlap(6, 2) != 0 {
		t.Fatal("gap between intervals should have no overlap")
	}
	if c.overlap(10, 5) != 5 {
		t.Fatal("second interval should overlap after cursor advances")
	}
}

func TestCursorOverlapSpansMultipleIntervals(t *testing.T) {
	c := newCursor([]resolve.Interval{{Start: 0, End: 5}, {Start: 5, End: 10}})
	if got := c.overlap(0, 10); got != 10 {
		t.Fatalf("want 10, got %d", got)
	}
}
