package pools

import "strconv"

// BufferBuilder assembles one TSV row at a time from a pooled backing
// array, avoiding the per-field allocation a sequence of fmt.Fprintf calls
// would cost when a row has one column per group and G can run into the
// tens of thousands (spec §3, §9).
type BufferBuilder struct {
	buf  []byte
	pool *BytePool
}

// NewBufferBuilder creates a new buffer builder with the given initial capacity.
func NewBufferBuilder(initialCap int) *BufferBuilder {
	return &BufferBuilder{
		buf:  defaultBytePool.Get(initialCap),
		pool: defaultBytePool,
	}
}

// Write appends bytes to the buffer.
func (b *BufferBuilder) Write(p []byte) {
	b.buf = append(b.buf, p...)
}

// WriteByte appends a single byte.
func (b *BufferBuilder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteString appends a string.
func (b *BufferBuilder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteUint appends v in decimal.
func (b *BufferBuilder) WriteUint(v uint64) {
	b.buf = strconv.AppendUint(b.buf, v, 10)
}

// WriteInt appends v in decimal.
func (b *BufferBuilder) WriteInt(v int) {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
}

// Bytes returns the built buffer. The slice shares the builder's storage,
// so writes after a Reset overwrite it; the builder stays usable.
func (b *BufferBuilder) Bytes() []byte {
	return b.buf
}

// Len returns the current length of the buffer.
func (b *BufferBuilder) Len() int {
	return len(b.buf)
}

// Reset resets the buffer for reuse.
func (b *BufferBuilder) Reset() {
	b.buf = b.buf[:0]
}

// Release returns the buffer to the pool. After Release, the builder should not be used.
func (b *BufferBuilder) Release() {
	if b.pool != nil && b.buf != nil {
		b.pool.Put(b.buf)
	}
	b.buf = nil
}
