// Package pools provides pooled byte buffers for assembling the
// tab-separated rows the table writer emits (pkg/abacus/table.go); the
// histogram and growth writers do not use it. A presence/absence table row
// carries one column per group, and G is bounded at 65534 (spec §3, §9);
// reusing a row-sized buffer across rows avoids an allocation per row on
// wide tables.
//
//   - BytePool: size-class based byte slice pooling, classes sized for row
//     widths rather than arbitrary byte buffers
//   - BufferBuilder: row assembly on top of a pooled buffer
package pools
