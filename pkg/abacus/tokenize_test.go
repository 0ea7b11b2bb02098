package abacus

import (
	"testing"

	"github.com/dd0wney/panacus-go/pkg/gfa"
)

func TestTokenizePath(t *testing.T) {
	toks := tokenizePath([]byte("a+,b+,c-"))
	if len(toks) != 3 {
		t.Fatalf("want 3 tokens, got %d", len(toks))
	}
	want := []struct {
		name string
		o    gfa.Orientation
	}{
		{"a", gfa.Forward}, {"b", gfa.Forward}, {"c", gfa.Reverse},
	}
	for i, w := range want {
		if string(toks[i].node) != w.name || toks[i].orientation != w.o {
			t.Fatalf("token %d: got %q/%c, want %q/%c", i, toks[i].node, toks[i].orientation, w.name, w.o)
		}
	}
}

func TestTokenizeWalk(t *testing.T) {
	toks := tokenizeWalk([]byte(">a<b>c"))
	if len(toks) != 3 {
		t.Fatalf("want 3 tokens, got %d", len(toks))
	}
	if string(toks[0].node) != "a" || toks[0].orientation != gfa.Forward {
		t.Fatalf("token 0 wrong: %+v", toks[0])
	}
	if string(toks[1].node) != "b" || toks[1].orientation != gfa.Reverse {
		t.Fatalf("token 1 wrong: %+v", toks[1])
	}
	if string(toks[2].node) != "c" || toks[2].orientation != gfa.Forward {
		t.Fatalf("token 2 wrong: %+v", toks[2])
	}
}

func TestTokenizePathEmptyBody(t *testing.T) {
	toks := tokenizePath([]byte(""))
	if len(toks) != 0 {
		t.Fatalf("expected no tokens for empty body, got %d", len(toks))
	}
}
