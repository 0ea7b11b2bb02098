package resolve

import (
	"io"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/dd0wney/panacus-go/pkg/gfa"
	"github.com/dd0wney/panacus-go/pkg/logging"
)

// Resolution is the output of the Auxiliary Resolver (spec §4.2).
type Resolution struct {
	SubsetMap  map[gfa.PathKey][]Interval
	ExcludeMap map[gfa.PathKey][]Interval
	HasSubset  bool

	// GroupOf[i] is the group id assigned to pathSegments[i]; dense [0, G).
	GroupOf     []int
	GroupLabels []string
}

// Options configures Resolve's grouping behavior. At most one of Groupby,
// BySample, ByHaplotype may be set (spec §3 Grouping Constraint).
type Options struct {
	Subset     io.Reader
	Exclude    io.Reader
	Groupby    io.Reader
	BySample   bool
	ByHaplotype bool
}

// Resolve builds subset/exclude interval maps and a group assignment over
// pathSegments (spec §4.2).
func Resolve(pathSegments []gfa.PathSegment, opts Options, log logging.Logger) (*Resolution, error) {
	const op = "resolve.Resolve"
	if log == nil {
		log = logging.DefaultLogger()
	}

	active := 0
	if opts.Groupby != nil {
		active++
	}
	if opts.BySample {
		active++
	}
	if opts.ByHaplotype {
		active++
	}
	if active > 1 {
		return nil, errs.Invalid(op, "at most one of groupby file, by-sample, by-haplotype may be active")
	}

	knownKeys := make(map[gfa.PathKey]struct{}, len(pathSegments))
	for _, seg := range pathSegments {
		knownKeys[seg.Key()] = struct{}{}
	}

	dropped := logging.NewDropCounter()
	defer dropped.Flush(log)

	res := &Resolution{}

	if opts.Subset != nil {
		raw, err := intervalFile(opts.Subset, "resolve.Subset")
		if err != nil {
			return nil, err
		}
		res.SubsetMap = dropUnknown(raw, knownKeys, "subset", dropped)
		res.HasSubset = true
	} else {
		res.SubsetMap = map[gfa.PathKey][]Interval{}
	}

	if opts.Exclude != nil {
		raw, err := intervalFile(opts.Exclude, "resolve.Exclude")
		if err != nil {
			return nil, err
		}
		res.ExcludeMap = dropUnknown(raw, knownKeys, "exclude", dropped)
	} else {
		res.ExcludeMap = map[gfa.PathKey][]Interval{}
	}

	var labelOf map[gfa.PathKey]string
	if opts.Groupby != nil {
		m, err := parseGroupbyFile(opts.Groupby)
		if err != nil {
			return nil, err
		}
		labelOf = dropUnknownLabels(m, knownKeys, dropped)
	}

	groupID := make(map[string]int)
	res.GroupOf = make([]int, len(pathSegments))
	for i, seg := range pathSegments {
		label := groupLabel(seg, labelOf, opts.BySample, opts.ByHaplotype)
		id, ok := groupID[label]
		if !ok {
			id = len(res.GroupLabels)
			groupID[label] = id
			res.GroupLabels = append(res.GroupLabels, label)
		}
		res.GroupOf[i] = id
	}

	return res, nil
}

func groupLabel(seg gfa.PathSegment, labelOf map[gfa.PathKey]string, bySample, byHaplotype bool) string {
	switch {
	case labelOf != nil:
		if l, ok := labelOf[seg.Key()]; ok {
			return l
		}
		return seg.String()
	case bySample:
		return seg.Sample
	case byHaplotype:
		return seg.Sample + "#" + seg.Haplotype
	default:
		return seg.String()
	}
}

// Intervals returns the interval list to use for path key on the given map,
// substituting the full-range sentinel when hasConstraint is false or the
// path is simply absent from a default (empty) map.
func Intervals(m map[gfa.PathKey][]Interval, key gfa.PathKey, hasConstraint bool) []Interval {
	if ivs, ok := m[key]; ok {
		return ivs
	}
	if !hasConstraint {
		return []Interval{FullRange}
	}
	return nil // subset in effect but path absent: fully excluded
}

// ExcludeIntervals returns the exclusion intervals for key, or nil if the
// path carries none — unlike Intervals, absence never means "fully
// excluded" (there is no full-range sentinel for exclusion).
func ExcludeIntervals(m map[gfa.PathKey][]Interval, key gfa.PathKey) []Interval {
	return m[key]
}

// dropUnknown filters raw down to paths present in known, tallying
// mismatches on dropped instead of logging each one (spec §4.2, §7): a BED
// file built against a stale graph can name thousands of unknown paths.
func dropUnknown(raw map[gfa.PathKey][]Interval, known map[gfa.PathKey]struct{}, kind string, dropped *logging.DropCounter) map[gfa.PathKey][]Interval {
	out := make(map[gfa.PathKey][]Interval, len(raw))
	for k, v := range raw {
		if _, ok := known[k]; !ok {
			dropped.Note("dropping "+kind+" entries for paths not present in graph", k.Sample+"#"+k.Haplotype+"#"+k.SeqID)
			continue
		}
		out[k] = v
	}
	return out
}

func dropUnknownLabels(raw map[gfa.PathKey]string, known map[gfa.PathKey]struct{}, dropped *logging.DropCounter) map[gfa.PathKey]string {
	out := make(map[gfa.PathKey]string, len(raw))
	for k, v := range raw {
		if _, ok := known[k]; !ok {
			dropped.Note("dropping groupby entries for paths not present in graph", k.Sample+"#"+k.Haplotype+"#"+k.SeqID)
			continue
		}
		out[k] = v
	}
	return out
}
