package resolve

import (
	"bufio"
	"io"
	"strings"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/dd0wney/panacus-go/pkg/gfa"
)

// parseGroupbyFile parses a tab-separated path→label file. A path id
// repeated with a different label is rejected (spec §4.2: "Duplicate
// assignments of the same path to different groups are rejected").
func parseGroupbyFile(r io.Reader) (map[gfa.PathKey]string, error) {
	const op = "resolve.Groupby"
	out := make(map[gfa.PathKey]string)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return nil, errs.Format(op, lineNo, "expected 2 tab-separated columns, got %d", len(fields))
		}
		seg, err := gfa.ParsePathSegmentString(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, errs.Format(op, lineNo, "%v", err)
		}
		label := strings.TrimSpace(fields[1])
		key := seg.Key()
		if prev, ok := out[key]; ok && prev != label {
			return nil, errs.Invalid(op, "path %q assigned to conflicting groups %q and %q", seg, prev, label)
		}
		out[key] = label
	}
	if err := sc.Err(); err != nil {
		return nil, errs.IO(op, err)
	}
	return out, nil
}
