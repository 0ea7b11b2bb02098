package gfa

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/dd0wney/panacus-go/pkg/logging"
)

const indexerReadBufferSize = 1 << 20 // 1 MiB; path/walk bodies can be long lines

// Index performs the single sequential streaming pass described in spec
// §4.1: it assigns dense node ids (and, when withEdges, edge ids), records
// node lengths, and collects path/walk headers in source order. Parallelism
// is deliberately absent here; reordering id assignment would break the
// id-stability invariant the second pass depends on.
func Index(r io.Reader, withEdges bool, log logging.Logger) (*GraphIndex, error) {
	if log == nil {
		log = logging.DefaultLogger()
	}
	gi := NewGraphIndex(withEdges)
	br := bufio.NewReaderSize(r, indexerReadBufferSize)

	lineNo := 0
	for {
		line, err := br.ReadBytes('\n')
		if len(line) == 0 && err == io.EOF {
			break
		}
		lineNo++
		trimmed := bytes.TrimRight(line, "\r\n")

		if err == io.EOF && len(trimmed) > 0 && !bytes.HasSuffix(line, []byte("\n")) {
			// Trailing partial line with no terminator: tolerated, discarded
			// with a warning (spec §4.1).
			log.Warn("discarding unterminated trailing line", logging.LineNo(lineNo))
			break
		}
		if err != nil && err != io.EOF {
			return nil, errs.IO("gfa.Index", err)
		}

		if len(trimmed) > 0 {
			if perr := gi.dispatchLine(trimmed, lineNo); perr != nil {
				return nil, perr
			}
		}
		if err == io.EOF {
			break
		}
	}

	if len(gi.PathSegments) == 0 {
		log.Info("no path or walk headers found; the run continues with zero paths and zero groups", logging.Count(0))
	}
	return gi, nil
}

func (gi *GraphIndex) dispatchLine(line []byte, lineNo int) error {
	switch line[0] {
	case 'S':
		return gi.indexSegment(line, lineNo)
	case 'L':
		if gi.withEdges {
			return gi.indexLink(line, lineNo)
		}
		return nil
	case 'P':
		return gi.indexPathHeader(line, lineNo)
	case 'W':
		return gi.indexWalkHeader(line, lineNo)
	default:
		return nil
	}
}

// SplitTabs splits line into at most n tab-delimited fields (the last
// field retains any further tabs), avoiding an allocation per delimiter.
func SplitTabs(line []byte, n int) [][]byte {
	fields := make([][]byte, 0, n)
	start := 0
	for i := 0; i < len(line) && len(fields) < n-1; i++ {
		if line[i] == '\t' {
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	fields = append(fields, line[start:])
	return fields
}

func (gi *GraphIndex) indexSegment(line []byte, lineNo int) error {
	fields := SplitTabs(line, 4)
	if len(fields) < 3 {
		return errs.Format("gfa.indexSegment", lineNo, "segment line has %d fields, need >= 3", len(fields))
	}
	name := fields[1]
	seqLen := len(fields[2])
	gi.assignNode(name, seqLen)
	return nil
}

func (gi *GraphIndex) indexLink(line []byte, lineNo int) error {
	fields := SplitTabs(line, 6)
	if len(fields) < 5 {
		return errs.Format("gfa.indexLink", lineNo, "link line has %d fields, need >= 5", len(fields))
	}
	srcID, ok := gi.LookupNode(fields[1])
	if !ok {
		return errs.Format("gfa.indexLink", lineNo, "link references undefined segment %q", fields[1])
	}
	dstID, ok := gi.LookupNode(fields[3])
	if !ok {
		return errs.Format("gfa.indexLink", lineNo, "link references undefined segment %q", fields[3])
	}
	if len(fields[2]) == 0 || len(fields[4]) == 0 {
		return errs.Format("gfa.indexLink", lineNo, "missing orientation field")
	}
	key := EdgeKey{
		O1:  PlusMinusToOrientation(fields[2][0]),
		Src: srcID,
		O2:  PlusMinusToOrientation(fields[4][0]),
		Dst: dstID,
	}
	gi.assignEdge(key)
	return nil
}

func (gi *GraphIndex) indexPathHeader(line []byte, lineNo int) error {
	fields := SplitTabs(line, 3)
	if len(fields) < 2 {
		return errs.Format("gfa.indexPathHeader", lineNo, "path line has %d fields, need >= 2", len(fields))
	}
	seg, err := ParsePathSegmentString(string(fields[1]))
	if err != nil {
		return errs.Format("gfa.indexPathHeader", lineNo, "%v", err)
	}
	gi.PathSegments = append(gi.PathSegments, seg)
	return nil
}

func (gi *GraphIndex) indexWalkHeader(line []byte, lineNo int) error {
	fields := SplitTabs(line, 7)
	if len(fields) < 6 {
		return errs.Format("gfa.indexWalkHeader", lineNo, "walk line has %d fields, need >= 6", len(fields))
	}
	seg, err := ParseWalkHeaderFields(string(fields[1]), string(fields[2]), string(fields[3]), string(fields[4]), string(fields[5]))
	if err != nil {
		return errs.Format("gfa.indexWalkHeader", lineNo, "%v", err)
	}
	gi.PathSegments = append(gi.PathSegments, seg)
	return nil
}
