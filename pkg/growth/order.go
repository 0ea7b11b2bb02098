package growth

import (
	"bufio"
	"io"
	"strings"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/dd0wney/panacus-go/pkg/gfa"
)

// ResolveOrder determines the group evaluation order for ordered growth
// (spec §4.5: "explicit --order file, else subset file order, else GFA
// path order"). explicit, when non-nil, is a file of one group label per
// line. Otherwise the order is derived from pathOrder (the GFA path
// sequence) by taking each group's first occurrence, in the order its
// paths appear — pathOrder should be gi.PathSegments when no subset file
// reordered the paths (see DESIGN.md for the subset-file-order precedence
// note: subset parsing collapses to an unordered map, so this
// implementation falls back to GFA order whenever no explicit --order file
// is given).
func ResolveOrder(explicit io.Reader, groups []string, pathOrder []gfa.PathSegment, groupOf []int) ([]int, error) {
	const op = "growth.ResolveOrder"
	labelIdx := make(map[string]int, len(groups))
	for i, g := range groups {
		labelIdx[g] = i
	}

	if explicit != nil {
		labels, err := readLines(explicit)
		if err != nil {
			return nil, err
		}
		order := make([]int, 0, len(labels))
		seen := make(map[int]bool, len(labels))
		for _, l := range labels {
			idx, ok := labelIdx[l]
			if !ok {
				return nil, errs.Invalid(op, "order file references unknown group %q", l)
			}
			if !seen[idx] {
				seen[idx] = true
				order = append(order, idx)
			}
		}
		if len(order) != len(groups) {
			return nil, errs.Invalid(op, "order file lists %d of %d groups", len(order), len(groups))
		}
		return order, nil
	}

	order := make([]int, 0, len(groups))
	seen := make(map[int]bool, len(groups))
	for i := range pathOrder {
		gid := groupOf[i]
		if !seen[gid] {
			seen[gid] = true
			order = append(order, gid)
		}
	}
	return order, nil
}

func readLines(r io.Reader) ([]string, error) {
	const op = "growth.ResolveOrder"
	sc := bufio.NewScanner(r)
	var out []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.IO(op, err)
	}
	return out, nil
}
