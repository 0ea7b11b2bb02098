package gfa

import (
	"strconv"
	"strings"

	"github.com/dd0wney/panacus-go/pkg/errs"
)

// PathSegment is a canonical identifier for a path/walk: sample, haplotype,
// seqid (any may be empty) plus an optional half-open [Start, End) base-pair
// interval (spec §3). Equality for lookup purposes ignores the interval;
// use Key() to obtain the coordinate-free identity.
type PathSegment struct {
	Sample    string
	Haplotype string
	SeqID     string
	Start     *int
	End       *int
}

// PathKey is the coordinate-free identity of a PathSegment, used as a map
// key for subset/exclude/group resolution.
type PathKey struct {
	Sample    string
	Haplotype string
	SeqID     string
}

// Key returns the coordinate-free identity of p.
func (p PathSegment) Key() PathKey {
	return PathKey{Sample: p.Sample, Haplotype: p.Haplotype, SeqID: p.SeqID}
}

// String renders the canonical "sample#haplotype#seqid:start-end" form,
// omitting trailing parts that are empty/unknown.
func (p PathSegment) String() string {
	var b strings.Builder
	b.WriteString(p.Sample)
	if p.Haplotype != "" || p.SeqID != "" {
		b.WriteByte('#')
		b.WriteString(p.Haplotype)
	}
	if p.SeqID != "" {
		b.WriteByte('#')
		b.WriteString(p.SeqID)
	}
	if p.Start != nil && p.End != nil {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(*p.Start))
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(*p.End))
	}
	return b.String()
}

// ParsePathSegmentString parses "sample#haplotype#seqid:start-end" where
// every '#'-delimited part and the trailing ':start-end' are optional
// (spec §3). Used for P-line path names and for 1-column subset/exclude
// path id files.
func ParsePathSegmentString(s string) (PathSegment, error) {
	rest := s
	coordPart := ""
	if idx := strings.LastIndexByte(rest, ':'); idx >= 0 && looksLikeInterval(rest[idx+1:]) {
		coordPart = rest[idx+1:]
		rest = rest[:idx]
	}

	parts := strings.SplitN(rest, "#", 3)
	seg := PathSegment{}
	switch len(parts) {
	case 1:
		seg.Sample = parts[0]
	case 2:
		seg.Sample, seg.Haplotype = parts[0], parts[1]
	case 3:
		seg.Sample, seg.Haplotype, seg.SeqID = parts[0], parts[1], parts[2]
	}

	if coordPart != "" {
		dash := strings.IndexByte(coordPart, '-')
		if dash < 0 {
			return PathSegment{}, errs.Format("gfa.ParsePathSegment", 0,
				"malformed coordinate suffix %q in path id %q", coordPart, s)
		}
		start, err1 := strconv.Atoi(coordPart[:dash])
		end, err2 := strconv.Atoi(coordPart[dash+1:])
		if err1 != nil || err2 != nil {
			return PathSegment{}, errs.Format("gfa.ParsePathSegment", 0,
				"non-numeric coordinates in path id %q", s)
		}
		seg.Start, seg.End = &start, &end
	}
	return seg, nil
}

// looksLikeInterval reports whether s is plausibly a "start-end" suffix
// (both sides numeric), so a sample name that legitimately contains a ':'
// is not misparsed as a coordinate.
func looksLikeInterval(s string) bool {
	dash := strings.IndexByte(s, '-')
	if dash <= 0 || dash == len(s)-1 {
		return false
	}
	for i, r := range s {
		if i == dash {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseWalkHeaderFields parses the five W-line header fields (sample,
// haplotype, seqid, seq_start, seq_end) into a PathSegment. "*" marks an
// unknown value; for sample/haplotype/seqid this maps to the empty string,
// for start/end to nil (spec §4.1).
func ParseWalkHeaderFields(sample, haplotype, seqid, start, end string) (PathSegment, error) {
	seg := PathSegment{
		Sample:    unstar(sample),
		Haplotype: unstar(haplotype),
		SeqID:     unstar(seqid),
	}
	if start != "*" {
		v, err := strconv.Atoi(start)
		if err != nil {
			return PathSegment{}, errs.Format("gfa.ParseWalkHeaderFields", 0,
				"non-numeric seq_start %q", start)
		}
		seg.Start = &v
	}
	if end != "*" {
		v, err := strconv.Atoi(end)
		if err != nil {
			return PathSegment{}, errs.Format("gfa.ParseWalkHeaderFields", 0,
				"non-numeric seq_end %q", end)
		}
		seg.End = &v
	}
	return seg, nil
}

func unstar(s string) string {
	if s == "*" {
		return ""
	}
	return s
}
