package abacus

import (
	"bufio"
	"io"

	"github.com/dd0wney/panacus-go/pkg/errs"
	"github.com/dd0wney/panacus-go/pkg/pools"
)

// TableToTSV writes by as the items x groups presence/absence table spec §6
// describes: a header row of group labels (or a single "total" column when
// total collapses the group dimension), then one row per item with a 1/0
// per group. Each row is assembled in a pooled buffer (pkg/pools) before a
// single Write, since a table with tens of thousands of groups makes
// per-field Fprintf calls the dominant cost.
func (a *AbacusByGroup) TableToTSV(w io.Writer, total bool) error {
	const op = "abacus.TableToTSV"
	bw := bufio.NewWriter(w)

	row := pools.NewBufferBuilder(pools.RowCapacity(len(a.Groups), total))
	defer row.Release()

	row.WriteString("item")
	if total {
		row.WriteString("\ttotal")
	} else {
		for _, g := range a.Groups {
			row.WriteByte('\t')
			row.WriteString(g)
		}
	}
	row.WriteByte('\n')
	if _, err := bw.Write(row.Bytes()); err != nil {
		return errs.IO(op, err)
	}

	n := len(a.R) - 1
	for i := 0; i < n; i++ {
		row.Reset()
		row.WriteString(a.Names[i])
		present := a.Row(i)
		if total {
			row.WriteByte('\t')
			row.WriteInt(len(present))
		} else {
			set := make(map[uint16]struct{}, len(present))
			for _, gid := range present {
				set[gid] = struct{}{}
			}
			for gid := range a.Groups {
				row.WriteByte('\t')
				if _, ok := set[uint16(gid)]; ok {
					row.WriteByte('1')
				} else {
					row.WriteByte('0')
				}
			}
		}
		row.WriteByte('\n')
		if _, err := bw.Write(row.Bytes()); err != nil {
			return errs.IO(op, err)
		}
	}
	return bw.Flush()
}
