package resolve

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/dd0wney/panacus-go/pkg/gfa"
)

// intervalFile parses a subset/exclusion file: either a 1-column list of
// path ids (whole path included) or a 3/12-column BED file, mixed row by
// row (spec §4.2). Header lines beginning "browser", "track", or "#" are
// skipped.
func intervalFile(r io.Reader, op string) (map[gfa.PathKey][]Interval, error) {
	out := make(map[gfa.PathKey][]Interval)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "browser") || strings.HasPrefix(line, "track") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) == 1 {
			seg, err := gfa.ParsePathSegmentString(strings.TrimSpace(fields[0]))
			if err != nil {
				return nil, errs.Format(op, lineNo, "%v", err)
			}
			out[seg.Key()] = append(out[seg.Key()], FullRange)
			continue
		}
		if len(fields) == 3 {
			seg, ivs, err := bed3(fields, lineNo, op)
			if err != nil {
				return nil, err
			}
			out[seg.Key()] = append(out[seg.Key()], ivs...)
			continue
		}
		if len(fields) >= 12 {
			seg, ivs, err := bed12(fields, lineNo, op)
			if err != nil {
				return nil, err
			}
			out[seg.Key()] = append(out[seg.Key()], ivs...)
			continue
		}
		return nil, errs.Format(op, lineNo, "unsupported column count %d (want 1, 3 or 12)", len(fields))
	}
	if err := sc.Err(); err != nil {
		return nil, errs.IO(op, err)
	}
	for k := range out {
		sortIntervals(out[k])
	}
	return out, nil
}

func bed3(fields []string, lineNo int, op string) (gfa.PathSegment, []Interval, error) {
	seg, err := gfa.ParsePathSegmentString(fields[0])
	if err != nil {
		return gfa.PathSegment{}, nil, errs.Format(op, lineNo, "%v", err)
	}
	start, err1 := strconv.Atoi(fields[1])
	end, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return gfa.PathSegment{}, nil, errs.Format(op, lineNo, "non-numeric BED start/end")
	}
	return seg, []Interval{{Start: start, End: end}}, nil
}

func bed12(fields []string, lineNo int, op string) (gfa.PathSegment, []Interval, error) {
	seg, err := gfa.ParsePathSegmentString(fields[0])
	if err != nil {
		return gfa.PathSegment{}, nil, errs.Format(op, lineNo, "%v", err)
	}
	rowStart, err1 := strconv.Atoi(fields[1])
	if err1 != nil {
		return gfa.PathSegment{}, nil, errs.Format(op, lineNo, "non-numeric BED start")
	}
	blockCount, err2 := strconv.Atoi(fields[9])
	if err2 != nil {
		return gfa.PathSegment{}, nil, errs.Format(op, lineNo, "non-numeric blockCount")
	}
	sizes := strings.Split(strings.TrimRight(fields[10], ","), ",")
	starts := strings.Split(strings.TrimRight(fields[11], ","), ",")
	if len(sizes) < blockCount || len(starts) < blockCount {
		return gfa.PathSegment{}, nil, errs.Format(op, lineNo, "blockSizes/blockStarts shorter than blockCount %d", blockCount)
	}
	ivs := make([]Interval, 0, blockCount)
	for i := 0; i < blockCount; i++ {
		size, errA := strconv.Atoi(strings.TrimSpace(sizes[i]))
		blockStart, errB := strconv.Atoi(strings.TrimSpace(starts[i]))
		if errA != nil || errB != nil {
			return gfa.PathSegment{}, nil, errs.Format(op, lineNo, "non-numeric block entry %d", i)
		}
		s := rowStart + blockStart
		ivs = append(ivs, Interval{Start: s, End: s + size})
	}
	return seg, ivs, nil
}
