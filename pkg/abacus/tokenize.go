package abacus

import (
	"bytes"

	"github.com/dd0wney/panacus-go/pkg/gfa"
)

// token is one node traversal within a path/walk body, before its name has
// been resolved to a dense node id.
type token struct {
	node        []byte
	orientation gfa.Orientation
}

// tokenizePath splits a comma-separated P-line body into ordered tokens;
// each token is "<node-name><+|->", orientation is the final byte (spec
// §4.3 "Path parsing"). The split itself is content-free and safe to shard
// across workers; only the offset-walk that follows is sequential.
func tokenizePath(body []byte) []token {
	parts := bytes.Split(body, []byte(","))
	out := make([]token, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		last := p[len(p)-1]
		out = append(out, token{node: p[:len(p)-1], orientation: gfa.PlusMinusToOrientation(last)})
	}
	return out
}

// tokenizeWalk splits a W-line body into ordered tokens. The body is a
// sequence of "(<|>)name" runs; the leading delimiter is consumed, not
// used to create an empty leading node (spec §4.3 "Walk parsing").
func tokenizeWalk(body []byte) []token {
	out := make([]token, 0, len(body)/4+1)
	i := 0
	for i < len(body) {
		d := body[i]
		i++
		start := i
		for i < len(body) && body[i] != '<' && body[i] != '>' {
			i++
		}
		o := gfa.Forward
		if d == '<' {
			o = gfa.Reverse
		}
		out = append(out, token{node: body[start:i], orientation: o})
	}
	return out
}

// resolvedToken carries a token's dense node id alongside its orientation,
// produced by the parallel node-id resolution map (spec §5 point 1).
type resolvedToken struct {
	nodeID      uint32
	orientation gfa.Orientation
}
