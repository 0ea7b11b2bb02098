package abacus

import (
	"bufio"
	"bytes"
	"io"
	"sort"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/dd0wney/panacus-go/pkg/gfa"
	"github.com/dd0wney/panacus-go/pkg/logging"
	"github.com/dd0wney/panacus-go/pkg/parallel"
	"github.com/dd0wney/panacus-go/pkg/resolve"
	"github.com/dd0wney/panacus-go/pkg/shard"
)

const builderReadBufferSize = 1 << 20

// Options configures a Build call.
type Options struct {
	Count         CountType
	ByGroup       bool // also assemble the by-group CSR abacus
	Pool          *parallel.WorkerPool
	ShardStrategy shard.Strategy // defaults to shard.Default
}

// Result holds whichever abacus forms Options requested.
type Result struct {
	ByTotal *AbacusByTotal
	ByGroup *AbacusByGroup
}

// Build performs the second streaming pass over path/walk bodies (spec
// §4.3). r must yield the same GFA bytes gi was indexed from; the P/W
// lines are visited in the same order as gi.PathSegments.
func Build(r io.Reader, gi *gfa.GraphIndex, res *resolve.Resolution, opts Options, log logging.Logger) (*Result, error) {
	const op = "abacus.Build"
	if log == nil {
		log = logging.DefaultLogger()
	}
	if opts.ShardStrategy == nil {
		opts.ShardStrategy = shard.Default
	}
	if opts.Pool == nil {
		opts.Pool = parallel.NewWorkerPool(1)
		defer opts.Pool.Close()
	}

	G := len(res.GroupLabels)
	if err := groupCeilingCheck(op, G); err != nil {
		return nil, err
	}

	itemCount := gi.NodeCount()
	if opts.Count == CountEdge {
		itemCount = gi.EdgeCount()
	}

	table := newItemTable(opts.ShardStrategy)
	excluded := make([]bool, itemCount)
	var bpCovered []uint32
	if opts.Count == CountBp {
		bpCovered = make([]uint32, itemCount)
	}

	br := bufio.NewReaderSize(r, builderReadBufferSize)
	lineNo := 0
	pathIdx := 0
	for {
		line, err := br.ReadBytes('\n')
		if len(line) == 0 && err == io.EOF {
			break
		}
		lineNo++
		trimmed := bytes.TrimRight(line, "\r\n")

		if err == io.EOF && len(trimmed) > 0 && !bytes.HasSuffix(line, []byte("\n")) {
			log.Warn("discarding unterminated trailing line", logging.LineNo(lineNo))
			break
		}
		if err != nil && err != io.EOF {
			return nil, errs.IO(op, err)
		}

		if len(trimmed) > 0 && (trimmed[0] == 'P' || trimmed[0] == 'W') {
			if pathIdx >= len(gi.PathSegments) {
				return nil, errs.Format(op, lineNo, "more path/walk lines in second pass than the first pass indexed")
			}
			seg := gi.PathSegments[pathIdx]
			if perr := processPath(trimmed, seg, gi, res, opts, table, excluded, bpCovered, lineNo); perr != nil {
				return nil, perr
			}
			table.endPath()
			pathIdx++
		}
		if err == io.EOF {
			break
		}
	}

	return assemble(table, gi, res, opts, itemCount, excluded, bpCovered, log)
}

// processPath tokenizes and offset-walks a single P/W line, depositing
// qualifying items into table for the path's group.
func processPath(line []byte, seg gfa.PathSegment, gi *gfa.GraphIndex, res *resolve.Resolution, opts Options, table *itemTable, excluded []bool, bpCovered []uint32, lineNo int) error {
	const op = "abacus.Build"

	var body []byte
	switch line[0] {
	case 'P':
		fields := gfa.SplitTabs(line, 4)
		if len(fields) < 3 {
			return errs.Format(op, lineNo, "path line has %d fields, need >= 3", len(fields))
		}
		body = fields[2]
	case 'W':
		fields := gfa.SplitTabs(line, 7)
		if len(fields) < 7 {
			return errs.Format(op, lineNo, "walk line has %d fields, need >= 7", len(fields))
		}
		body = fields[6]
	}

	var toks []token
	if line[0] == 'P' {
		toks = tokenizePath(body)
	} else {
		toks = tokenizeWalk(body)
	}
	if len(toks) == 0 {
		return nil
	}

	resolved, err := parallel.MapOrdered(opts.Pool, toks, func(_ int, tk token) (resolvedToken, error) {
		id, ok := gi.LookupNode(tk.node)
		if !ok {
			return resolvedToken{}, errs.Format(op, lineNo, "path references undefined segment %q", tk.node)
		}
		return resolvedToken{nodeID: id, orientation: tk.orientation}, nil
	})
	if err != nil {
		return err
	}

	subsetIvs := resolve.Intervals(res.SubsetMap, seg.Key(), res.HasSubset)
	excludeIvs := resolve.ExcludeIntervals(res.ExcludeMap, seg.Key())
	subset := newCursor(subsetIvs)
	exclude := newCursor(excludeIvs)

	p := 0
	if seg.Start != nil {
		p = *seg.Start
	}

	switch opts.Count {
	case CountNode:
		for _, rt := range resolved {
			l := int(gi.NodeLen[rt.nodeID])
			contained := subset.contains(p, l)
			excl := exclude.overlap(p, l) > 0
			if contained && !excl {
				table.deposit(rt.nodeID)
			} else if excl {
				excluded[rt.nodeID] = true
			}
			p += l
		}
	case CountBp:
		for _, rt := range resolved {
			l := int(gi.NodeLen[rt.nodeID])
			amt := subset.overlap(p, l) - exclude.overlap(p, l)
			if amt < 0 {
				amt = 0
			}
			if amt > l {
				amt = l
			}
			if amt > 0 {
				table.deposit(rt.nodeID)
				bpCovered[rt.nodeID] += uint32(amt)
			}
			p += l
		}
	case CountEdge:
		// p is, at the top of each iteration, the start offset of resolved[i-1].
		for i := 1; i < len(resolved); i++ {
			prev, cur := resolved[i-1], resolved[i]
			key := gfa.EdgeKey{O1: prev.orientation, Src: prev.nodeID, O2: cur.orientation, Dst: cur.nodeID}
			edgeID, ok := gi.LookupEdge(key)
			if !ok {
				return errs.Format(op, lineNo, "path traverses undefined edge %c%d%c%d", prev.orientation, prev.nodeID, cur.orientation, cur.nodeID)
			}
			l1, l2 := int(gi.NodeLen[prev.nodeID]), int(gi.NodeLen[cur.nodeID])
			span := l1 + l2
			contained := subset.contains(p, span)
			excl := exclude.overlap(p, span) > 0
			if contained && !excl {
				table.deposit(edgeID)
			} else if excl {
				excluded[edgeID] = true
			}
			p += l1
		}
	}
	return nil
}

// assemble performs the shard-parallel reduction into the by-total (and,
// if requested, by-group) abacus (spec §4.3 "By-total assembly",
// "By-group assembly").
func assemble(table *itemTable, gi *gfa.GraphIndex, res *resolve.Resolution, opts Options, itemCount int, excluded []bool, bpCovered []uint32, log logging.Logger) (*Result, error) {
	groupsSeen := make([]map[int]struct{}, itemCount)

	shardIdx := make([]int, opts.ShardStrategy.Count())
	itemCounts := make([]int, opts.ShardStrategy.Count())
	for i := range shardIdx {
		shardIdx[i] = i
	}
	_, err := parallel.MapOrdered(opts.Pool, shardIdx, func(_ int, s int) (struct{}, error) {
		items := table.items[s]
		itemCounts[s] = len(items)
		local := make(map[uint32]map[int]struct{})
		for j, id := range items {
			p := table.pathOf(s, j)
			grp := res.GroupOf[p]
			set, ok := local[id]
			if !ok {
				set = map[int]struct{}{}
				local[id] = set
			}
			set[grp] = struct{}{}
		}
		for id, set := range local {
			groupsSeen[id] = set // disjoint across shards: id mod SIZE_T == s uniquely
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}
	lm := shard.ComputeLoadMetrics(itemCounts)
	log.Debug("shard load balance", logging.Float64("load_balance", lm.LoadBalance), logging.Int("shard_count", len(lm.ShardSizes)))

	countable := make([]uint16, itemCount)
	for i := 0; i < itemCount; i++ {
		if excluded[i] {
			countable[i] = errs.SentinelExcluded
			continue
		}
		n := len(groupsSeen[i])
		if uint16(n) >= errs.SentinelExcluded {
			// n can only reach this range when g is at the 65534 ceiling and
			// every group covers the item; the true count is indistinguishable
			// from a reserved sentinel bit pattern.
			countable[i] = errs.SentinelOverflow
			continue
		}
		countable[i] = uint16(n)
	}

	var uncovered, itemLen []uint32
	if opts.Count == CountBp {
		uncovered = make([]uint32, itemCount)
		itemLen = make([]uint32, itemCount)
		for i := 0; i < itemCount; i++ {
			covered := bpCovered[i]
			if covered > gi.NodeLen[i] {
				covered = gi.NodeLen[i]
			}
			uncovered[i] = gi.NodeLen[i] - covered
			itemLen[i] = gi.NodeLen[i]
		}
	}

	names := itemNames(gi, opts.Count, itemCount)

	result := &Result{
		ByTotal: &AbacusByTotal{
			CountType:   opts.Count,
			Countable:   countable,
			UncoveredBp: uncovered,
			ItemLen:     itemLen,
			Groups:      res.GroupLabels,
			Names:       names,
		},
	}

	if opts.ByGroup {
		result.ByGroup = assembleByGroup(groupsSeen, excluded, res.GroupLabels, names, opts.Count, itemCount)
	}
	return result, nil
}

func assembleByGroup(groupsSeen []map[int]struct{}, excluded []bool, groups, names []string, countType CountType, itemCount int) *AbacusByGroup {
	r := make([]int, itemCount+1)
	rows := make([][]uint16, itemCount)
	for i := 0; i < itemCount; i++ {
		if excluded[i] {
			continue
		}
		set := groupsSeen[i]
		if len(set) == 0 {
			continue
		}
		row := make([]uint16, 0, len(set))
		for gid := range set {
			row = append(row, uint16(gid))
		}
		sort.Slice(row, func(a, b int) bool { return row[a] < row[b] })
		rows[i] = row
	}
	for i := 0; i < itemCount; i++ {
		r[i+1] = r[i] + len(rows[i])
	}
	v := make([]uint16, r[itemCount])
	for i, row := range rows {
		copy(v[r[i]:r[i+1]], row)
	}
	return &AbacusByGroup{CountType: countType, R: r, V: v, Groups: groups, Names: names}
}

func itemNames(gi *gfa.GraphIndex, countType CountType, itemCount int) []string {
	names := make([]string, itemCount)
	switch countType {
	case CountEdge:
		for i := 0; i < itemCount; i++ {
			names[i] = gfa.EdgeName(gi.EdgeOrder[i])
		}
	default:
		copy(names, gi.Names)
	}
	return names
}
