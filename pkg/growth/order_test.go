package growth

import (
	"strings"
	"testing"

	"github.com/dd0wney/panacus-go/pkg/gfa"
)

func TestResolveOrderDefaultsToGFAPathOrder(t *testing.T) {
	groups := []string{"g0", "g1"}
	paths := []gfa.PathSegment{{Sample: "p1"}, {Sample: "p2"}}
	groupOf := []int{1, 0} // p1 -> g1, p2 -> g0
	order, err := ResolveOrder(nil, groups, paths, groupOf)
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 0 {
		t.Errorf("want [1 0], got %v", order)
	}
}

func TestResolveOrderExplicitFile(t *testing.T) {
	groups := []string{"g0", "g1"}
	order, err := ResolveOrder(strings.NewReader("g1\ng0\n"), groups, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 0 {
		t.Errorf("want [1 0], got %v", order)
	}
}

func TestResolveOrderExplicitFileRejectsUnknownGroup(t *testing.T) {
	groups := []string{"g0"}
	_, err := ResolveOrder(strings.NewReader("ghost\n"), groups, nil, nil)
	if err == nil {
		t.Error("want error for unknown group label")
	}
}
