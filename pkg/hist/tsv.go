package hist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/panacus-go/pkg/abacus"
	"github.com/dd0wney/panacus-go/pkg/errs"
)

// SchemaMarker is the tab-separated schema line written after the
// invocation comment on every histogram/growth file (SPEC_FULL §3,
// resolving spec.md §9's TSV-stability Open Question).
const SchemaMarker = "#schema: panacus/v1"

// ToTSV writes h in the two-column form spec §4.4 describes: a header
// naming the count type, then one "k\tcount" row per coverage bucket.
func (h *Hist) ToTSV(w io.Writer) error {
	const op = "hist.ToTSV"
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, SchemaMarker); err != nil {
		return errs.IO(op, err)
	}
	if _, err := fmt.Fprintf(bw, "# count=%s\n", h.CountType); err != nil {
		return errs.IO(op, err)
	}
	if _, err := fmt.Fprintln(bw, "coverage\tcount"); err != nil {
		return errs.IO(op, err)
	}
	for k, c := range h.Coverage {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", k, c); err != nil {
			return errs.IO(op, err)
		}
	}
	return bw.Flush()
}

// FromTSV reads the form ToTSV writes, optionally preceded by "# " comment
// lines such as the CLI's invocation line. A missing or mismatched schema
// marker is a FormatError, per SPEC_FULL §3.
func FromTSV(r io.Reader) (*Hist, error) {
	const op = "hist.FromTSV"
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	lineNo := 0
	for {
		if !sc.Scan() {
			if lineNo == 0 {
				return nil, errs.Format(op, 0, "empty histogram stream")
			}
			return nil, errs.Format(op, lineNo, "missing or mismatched schema marker %q", SchemaMarker)
		}
		lineNo++
		if sc.Text() == SchemaMarker {
			break
		}
		if !strings.HasPrefix(sc.Text(), "# ") {
			return nil, errs.Format(op, lineNo, "missing or mismatched schema marker %q", SchemaMarker)
		}
	}

	countType := abacus.CountNode
	var coverage []uint64
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if ct, ok := strings.CutPrefix(line, "# count="); ok {
				parsed, err := parseCountType(ct)
				if err != nil {
					return nil, errs.Format(op, lineNo, "%v", err)
				}
				countType = parsed
			}
			continue
		}
		if line == "coverage\tcount" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, errs.Format(op, lineNo, "expected 2 tab-separated fields, got %d", len(fields))
		}
		k, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errs.Format(op, lineNo, "malformed coverage index: %v", err)
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, errs.Format(op, lineNo, "malformed count: %v", err)
		}
		for len(coverage) <= k {
			coverage = append(coverage, 0)
		}
		coverage[k] = v
	}
	if err := sc.Err(); err != nil {
		return nil, errs.IO(op, err)
	}
	return &Hist{CountType: countType, Coverage: coverage}, nil
}

func parseCountType(s string) (abacus.CountType, error) {
	switch s {
	case "node":
		return abacus.CountNode, nil
	case "edge":
		return abacus.CountEdge, nil
	case "bp":
		return abacus.CountBp, nil
	default:
		return 0, fmt.Errorf("unknown count type %q", s)
	}
}
