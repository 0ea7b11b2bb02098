package gfa

import "unsafe"

// arena interns raw byte names (segment/edge keys) into chunked, append-only
// buffers so the node2id map can be keyed without allocating a fresh owned
// string per line (spec §9: "intern names into a contiguous arena and key
// the map by ... an interned handle"). Once a chunk is allocated its
// backing array is never reallocated, so strings built over it with
// unsafe.String stay valid for the arena's lifetime.
type arena struct {
	chunks [][]byte
}

const arenaChunkSize = 64 * 1024

func newArena() *arena {
	return &arena{}
}

// intern copies b into the arena and returns a string backed by that copy.
func (a *arena) intern(b []byte) string {
	if len(a.chunks) == 0 || cap(a.chunks[len(a.chunks)-1])-len(a.chunks[len(a.chunks)-1]) < len(b) {
		size := arenaChunkSize
		if len(b) > size {
			size = len(b)
		}
		a.chunks = append(a.chunks, make([]byte, 0, size))
	}
	i := len(a.chunks) - 1
	start := len(a.chunks[i])
	a.chunks[i] = append(a.chunks[i], b...)
	s := a.chunks[i][start:len(a.chunks[i]):len(a.chunks[i])]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}
