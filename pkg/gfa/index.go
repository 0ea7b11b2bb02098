package gfa

import "strconv"

// Orientation is the strand byte used in link/path/walk orientations,
// canonicalized to '>' (forward) or '<' (reverse) regardless of whether the
// source used '+'/'-' (path) or '>'/'<' (walk) notation (spec §3, §4.1).
type Orientation byte

const (
	Forward Orientation = '>'
	Reverse Orientation = '<'
)

// PlusMinusToOrientation maps a path-line '+'/'-' suffix to Orientation.
func PlusMinusToOrientation(b byte) Orientation {
	if b == '-' {
		return Reverse
	}
	return Forward
}

// EdgeKey is the canonical 4-tuple identity of a link: orientation, source
// node id, orientation, destination node id (spec §3, §4.1). Keys are
// stored exactly as seen; no canonicalization across reverse complements.
type EdgeKey struct {
	O1  Orientation
	Src uint32
	O2  Orientation
	Dst uint32
}

// GraphIndex is the output of the first streaming pass: dense integer ids
// for nodes (and optionally edges), node lengths in base pairs, and the
// path/walk headers encountered, in source order (spec §3).
type GraphIndex struct {
	arena   *arena
	node2id map[string]uint32
	NodeLen []uint32 // indexed by node id; invariant NodeLen[id] > 0
	Names   []string // indexed by node id; reverse of node2id

	withEdges bool
	edge2id   map[EdgeKey]uint32
	edgeCount uint32
	EdgeOrder []EdgeKey // indexed by edge id; reverse of edge2id

	PathSegments []PathSegment
}

// NewGraphIndex creates an empty GraphIndex. withEdges enables link (L
// line) indexing; when false, L lines are skipped entirely (spec §4.1:
// "only when count=Edge").
func NewGraphIndex(withEdges bool) *GraphIndex {
	gi := &GraphIndex{
		arena:     newArena(),
		node2id:   make(map[string]uint32, 1024),
		NodeLen:   make([]uint32, 0, 1024),
		withEdges: withEdges,
	}
	if withEdges {
		gi.edge2id = make(map[EdgeKey]uint32, 1024)
	}
	return gi
}

// NodeCount returns the number of distinct nodes assigned an id.
func (gi *GraphIndex) NodeCount() int {
	return len(gi.NodeLen)
}

// EdgeCount returns the number of distinct edges assigned an id (0 if edge
// indexing was disabled).
func (gi *GraphIndex) EdgeCount() int {
	return int(gi.edgeCount)
}

// LookupNode returns the id assigned to a segment name, if any.
func (gi *GraphIndex) LookupNode(name []byte) (uint32, bool) {
	id, ok := gi.node2id[string(name)] // compiler-recognized no-alloc map read
	return id, ok
}

// assignNode returns the existing id for name, or assigns the next free
// dense id (duplicate names keep their first id, spec §4.1).
func (gi *GraphIndex) assignNode(name []byte, length int) uint32 {
	if id, ok := gi.node2id[string(name)]; ok {
		return id
	}
	id := uint32(len(gi.NodeLen))
	interned := gi.arena.intern(name)
	gi.node2id[interned] = id
	gi.NodeLen = append(gi.NodeLen, uint32(length))
	gi.Names = append(gi.Names, interned)
	return id
}

// LookupEdge returns the id assigned to key, if any.
func (gi *GraphIndex) LookupEdge(key EdgeKey) (uint32, bool) {
	id, ok := gi.edge2id[key]
	return id, ok
}

// assignEdge assigns the next free dense edge id to key if not already
// present.
func (gi *GraphIndex) assignEdge(key EdgeKey) uint32 {
	if id, ok := gi.edge2id[key]; ok {
		return id
	}
	id := gi.edgeCount
	gi.edge2id[key] = id
	gi.edgeCount++
	gi.EdgeOrder = append(gi.EdgeOrder, key)
	return id
}

// EdgeName renders the canonical textual form of an edge key,
// "<o1><src><o2><dst>", used as the item label in table/TSV output.
func EdgeName(k EdgeKey) string {
	return string(byte(k.O1)) + strconv.FormatUint(uint64(k.Src), 10) + string(byte(k.O2)) + strconv.FormatUint(uint64(k.Dst), 10)
}
