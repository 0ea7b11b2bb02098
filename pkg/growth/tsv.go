package growth

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/dd0wney/panacus-go/pkg/hist"
)

// String renders a Threshold the way the CLI surface accepted it: a bare
// integer for Absolute, a float in [0,1] for Relative.
func (t Threshold) String() string {
	if !t.isRel {
		return strconv.Itoa(t.absolute)
	}
	return strconv.FormatFloat(t.relative, 'g', -1, 64)
}

// ToTSV writes c in the growth form spec §6 describes: a coverage-threshold
// header row, a quorum-threshold row, then one row per prefix size m with
// the group label at that position (or 1..G when labels is nil) followed
// by the floored growth value for every (coverage, quorum) pair.
func (c *Curve) ToTSV(w io.Writer, labels []string) error {
	const op = "growth.ToTSV"
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, hist.SchemaMarker); err != nil {
		return errs.IO(op, err)
	}
	if err := writeThresholdHeader(bw, "coverage", c.Coverage); err != nil {
		return errs.IO(op, err)
	}
	if err := writeThresholdHeader(bw, "quorum", c.Quorum); err != nil {
		return errs.IO(op, err)
	}
	for m := 1; m <= c.G; m++ {
		label := rowLabel(labels, m)
		if _, err := fmt.Fprint(bw, label); err != nil {
			return errs.IO(op, err)
		}
		for p := range c.Values {
			if _, err := fmt.Fprintf(bw, "\t%d", int64(math.Floor(c.Values[p][m-1]))); err != nil {
				return errs.IO(op, err)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return errs.IO(op, err)
		}
	}
	return bw.Flush()
}

// ToTSV writes an OrderedCurve in the same growth form Curve.ToTSV uses —
// one column per (coverage, quorum) pair — using the explicit group
// order's labels as each row's identity instead of a bare position.
func (oc *OrderedCurve) ToTSV(w io.Writer, groupLabels []string) error {
	const op = "growth.OrderedCurve.ToTSV"
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, hist.SchemaMarker); err != nil {
		return errs.IO(op, err)
	}
	if err := writeThresholdHeader(bw, "coverage", oc.Coverage); err != nil {
		return errs.IO(op, err)
	}
	if err := writeThresholdHeader(bw, "quorum", oc.Quorum); err != nil {
		return errs.IO(op, err)
	}
	for m := 1; m <= len(oc.Order); m++ {
		label := groupLabels[oc.Order[m-1]]
		if _, err := fmt.Fprint(bw, label); err != nil {
			return errs.IO(op, err)
		}
		for p := range oc.Values {
			if _, err := fmt.Fprintf(bw, "\t%d", int64(math.Floor(oc.Values[p][m-1]))); err != nil {
				return errs.IO(op, err)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return errs.IO(op, err)
		}
	}
	return bw.Flush()
}

func writeThresholdHeader(bw *bufio.Writer, name string, ts []Threshold) error {
	if _, err := fmt.Fprint(bw, name); err != nil {
		return err
	}
	for _, t := range ts {
		if _, err := fmt.Fprintf(bw, "\t%s", t.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(bw)
	return err
}

func rowLabel(labels []string, m int) string {
	if m-1 < len(labels) && labels[m-1] != "" {
		return labels[m-1]
	}
	return strconv.Itoa(m)
}
