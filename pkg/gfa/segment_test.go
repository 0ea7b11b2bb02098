package gfa

import "testing"

func TestParsePathSegmentStringFull(t *testing.T) {
	seg, err := ParsePathSegmentString("HG002#1#chr1:100-200")
	if err != nil {
		t.Fatal(err)
	}
	if seg.Sample != "HG002" || seg.Haplotype != "1" || seg.SeqID != "chr1" {
		t.Fatalf("parsed wrong: %+v", seg)
	}
	if seg.Start == nil || *seg.Start != 100 || seg.End == nil || *seg.End != 200 {
		t.Fatalf("coordinates parsed wrong: %+v", seg)
	}
}

func TestParsePathSegmentStringBareName(t *testing.T) {
	seg, err := ParsePathSegmentString("p1")
	if err != nil {
		t.Fatal(err)
	}
	if seg.Sample != "p1" || seg.Haplotype != "" || seg.SeqID != "" || seg.Start != nil {
		t.Fatalf("bare name parsed wrong: %+v", seg)
	}
}

func TestParsePathSegmentStringSampleHaplotypeOnly(t *testing.T) {
	seg, err := ParsePathSegmentString("sample#0")
	if err != nil {
		t.Fatal(err)
	}
	if seg.Sample != "sample" || seg.Haplotype != "0" || seg.SeqID != "" {
		t.Fatalf("parsed wrong: %+v", seg)
	}
}

func TestKeyIgnoresCoordinates(t *testing.T) {
	a, _ := ParsePathSegmentString("s#0#chr1:0-100")
	b, _ := ParsePathSegmentString("s#0#chr1:200-300")
	if a.Key() != b.Key() {
		t.Fatalf("keys should be equal ignoring coordinates: %+v vs %+v", a.Key(), b.Key())
	}
}

func TestParseWalkHeaderUnknownFields(t *testing.T) {
	seg, err := ParseWalkHeaderFields("*", "*", "*", "*", "*")
	if err != nil {
		t.Fatal(err)
	}
	if seg.Sample != "" || seg.Haplotype != "" || seg.SeqID != "" || seg.Start != nil || seg.End != nil {
		t.Fatalf("all-unknown walk header should produce zero segment: %+v", seg)
	}
}

func TestParseWalkHeaderNonNumericCoordinate(t *testing.T) {
	if _, err := ParseWalkHeaderFields("s", "0", "chr1", "abc", "10"); err == nil {
		t.Fatal("expected error for non-numeric seq_start")
	}
}
