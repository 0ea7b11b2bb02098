package gfa

import (
	"strings"
	"testing"
)

const toyGFA = "S\ta\tA\n" +
	"S\tb\tC\n" +
	"S\tc\tG\n" +
	"L\ta\t+\tb\t+\t0M\n" +
	"P\tp1\ta+,b+\t*\n" +
	"P\tp2\tb+,c+\t*\n"

func TestIndexToyGraph(t *testing.T) {
	gi, err := Index(strings.NewReader(toyGFA), true, nil)
	if err != nil {
		t.Fatal(err)
	}
	if gi.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3", gi.NodeCount())
	}
	if gi.EdgeCount() != 1 {
		t.Fatalf("EdgeCount() = %d, want 1", gi.EdgeCount())
	}
	if len(gi.PathSegments) != 2 {
		t.Fatalf("len(PathSegments) = %d, want 2", len(gi.PathSegments))
	}
	aID, ok := gi.LookupNode([]byte("a"))
	if !ok || gi.NodeLen[aID] != 1 {
		t.Fatalf("node a length wrong: id=%d ok=%v len=%v", aID, ok, gi.NodeLen)
	}
}

func TestIndexDuplicateSegmentKeepsFirstID(t *testing.T) {
	data := "S\ta\tAAA\nS\ta\tCCCCC\n"
	gi, err := Index(strings.NewReader(data), false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if gi.NodeCount() != 1 {
		t.Fatalf("expected duplicate segment to keep first id, got %d nodes", gi.NodeCount())
	}
	id, _ := gi.LookupNode([]byte("a"))
	if gi.NodeLen[id] != 3 {
		t.Fatalf("expected first-seen length 3, got %d", gi.NodeLen[id])
	}
}

func TestIndexEmptyGraphNoPaths(t *testing.T) {
	gi, err := Index(strings.NewReader("S\ta\tAAA\n"), false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(gi.PathSegments) != 0 {
		t.Fatalf("expected no path segments, got %d", len(gi.PathSegments))
	}
}

func TestIndexLinkUndefinedSegmentIsFormatError(t *testing.T) {
	_, err := Index(strings.NewReader("L\tx\t+\ty\t+\t0M\n"), true, nil)
	if err == nil {
		t.Fatal("expected format error for link referencing undefined segments")
	}
}

func TestIndexWalkHeader(t *testing.T) {
	data := "S\ta\tAAAA\nS\tb\tCC\nW\tsamp\t0\tchr1\t0\t6\t>a>b\n"
	gi, err := Index(strings.NewReader(data), false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(gi.PathSegments) != 1 {
		t.Fatalf("expected 1 walk header, got %d", len(gi.PathSegments))
	}
	seg := gi.PathSegments[0]
	if seg.Sample != "samp" || seg.Haplotype != "0" || seg.SeqID != "chr1" {
		t.Fatalf("walk header parsed wrong: %+v", seg)
	}
	if seg.Start == nil || *seg.Start != 0 || seg.End == nil || *seg.End != 6 {
		t.Fatalf("walk coordinates parsed wrong: %+v", seg)
	}
}

func TestIndexTrailingPartialLineDiscarded(t *testing.T) {
	data := "S\ta\tAAAA\nP\tp1\ta+\t*\nS\tb\tCC" // no trailing newline
	gi, err := Index(strings.NewReader(data), false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if gi.NodeCount() != 1 {
		t.Fatalf("trailing partial segment line should be discarded, got %d nodes", gi.NodeCount())
	}
}
