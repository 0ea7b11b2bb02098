package abacus

import (
	"sort"

	"github.com/dd0wney/panacus-go/pkg/shard"
)

// itemTable is the sharded count buffer populated during the second
// streaming pass (spec §3 ItemTable). Items are distributed across
// strategy.Count() shards by id; within a shard the items vector is a flat,
// append-only log of every deposit, and prefsum records, per path, the
// running total of deposits into that shard so the path that produced any
// given entry can be recovered by binary search.
type itemTable struct {
	strategy shard.Strategy
	items    [][]uint32
	prefsum  [][]int
}

func newItemTable(strategy shard.Strategy) *itemTable {
	n := strategy.Count()
	t := &itemTable{
		strategy: strategy,
		items:    make([][]uint32, n),
		prefsum:  make([][]int, n),
	}
	for s := 0; s < n; s++ {
		t.prefsum[s] = []int{0}
	}
	return t
}

// deposit records that the path currently being walked contributed id.
func (t *itemTable) deposit(id uint32) {
	s := t.strategy.ShardOf(id)
	t.items[s] = append(t.items[s], id)
}

// endPath closes out the current path's contribution to every shard's
// prefix sum (spec invariant: prefsum[s][p+1]-prefsum[s][p] equals the
// count path p deposited into shard s).
func (t *itemTable) endPath() {
	for s := range t.items {
		t.prefsum[s] = append(t.prefsum[s], len(t.items[s]))
	}
}

// pathOf returns the path index that deposited items[s][j].
func (t *itemTable) pathOf(s, j int) int {
	prefsum := t.prefsum[s]
	// largest p such that prefsum[p] <= j
	return sort.Search(len(prefsum), func(p int) bool { return prefsum[p] > j }) - 1
}

// checkInvariant verifies, for every shard, prefsum[s][P] == len(items[s])
// (spec §8 invariant 1). Used by tests; not on any hot path.
func (t *itemTable) checkInvariant() bool {
	for s := range t.items {
		last := t.prefsum[s][len(t.prefsum[s])-1]
		if last != len(t.items[s]) {
			return false
		}
	}
	return true
}
