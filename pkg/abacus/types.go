// Package abacus implements the Abacus Builder (spec §4.3): the second
// streaming pass over path/walk bodies that produces either a by-total or
// by-group item-by-group incidence structure.
package abacus

import "github.com/dd0wney/panacus-go/pkg/errs"

// CountType selects what the builder counts.
type CountType int

const (
	CountNode CountType = iota
	CountEdge
	CountBp
)

func (c CountType) String() string {
	switch c {
	case CountNode:
		return "node"
	case CountEdge:
		return "edge"
	case CountBp:
		return "bp"
	default:
		return "unknown"
	}
}

// AbacusByTotal is the per-item group-coverage count (spec §3).
type AbacusByTotal struct {
	CountType   CountType
	Countable   []uint16 // length N (or E); countable[i] = distinct groups covering item i, or a sentinel
	UncoveredBp []uint32 // length N, only populated when CountType == CountBp
	ItemLen     []uint32 // length N, node length in bp; only populated when CountType == CountBp
	Groups      []string // length G, group-id order
	Names       []string // length N (or E), item display names
}

// AbacusByGroup is the sparse item×group incidence CSR (spec §3).
type AbacusByGroup struct {
	CountType CountType
	R         []int    // row offsets, length N+1 (or E+1)
	V         []uint16 // group ids per row, sorted ascending, deduplicated
	Groups    []string // length G
	Names     []string // length N (or E)
}

// Row returns the sorted, deduplicated group ids covering item i.
func (a *AbacusByGroup) Row(i int) []uint16 {
	return a.V[a.R[i]:a.R[i+1]]
}

func groupCeilingCheck(op string, g int) error {
	if g > errs.MaxGroups {
		return errs.TooManyGroups(op, g)
	}
	return nil
}
