package pools

import (
	"sync"
	"testing"
)

func TestBytePool_Get(t *testing.T) {
	pool := NewBytePool()

	tests := []struct {
		name   string
		size   int
		minCap int
	}{
		{"narrow", 8, 8},
		{"narrow_exact", NarrowRowSize, NarrowRowSize},
		{"standard", 128, 128},
		{"standard_exact", StandardRowSize, StandardRowSize},
		{"wide", 4096, 4096},
		{"wide_exact", WideRowSize, WideRowSize},
		{"very_wide", 100000, 100000},
		{"very_wide_exact", VeryWideRowSize, VeryWideRowSize},
		{"oversized", 500000, 500000}, // beyond VeryWideRowSize, allocated directly
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := pool.Get(tt.size)
			if len(b) != 0 {
				t.Errorf("Get(%d) length = %d, want 0", tt.size, len(b))
			}
			if cap(b) < tt.minCap {
				t.Errorf("Get(%d) capacity = %d, want >= %d", tt.size, cap(b), tt.minCap)
			}
		})
	}
}

func TestBytePool_GetSized(t *testing.T) {
	pool := NewBytePool()

	b := pool.GetSized(100)
	if len(b) != 100 {
		t.Errorf("GetSized(100) length = %d, want 100", len(b))
	}
	if cap(b) < 100 {
		t.Errorf("GetSized(100) capacity = %d, want >= 100", cap(b))
	}
}

func TestBytePool_PutAndReuse(t *testing.T) {
	pool := NewBytePool()

	for i := 0; i < 10; i++ {
		b := pool.Get(64)
		b = append(b, "test data"...)
		pool.Put(b)
	}

	b := pool.Get(64)
	if len(b) != 0 {
		t.Errorf("After Put, Get returned slice with length %d, want 0", len(b))
	}
}

func TestBytePool_OversizedNotPooled(t *testing.T) {
	pool := NewBytePool()

	large := make([]byte, MaxPoolableRowSize+1000)
	pool.Put(large) // Should not panic or error
}

func TestDefaultBytePool(t *testing.T) {
	b := GetBytes(100)
	if cap(b) < 100 {
		t.Errorf("GetBytes(100) capacity = %d, want >= 100", cap(b))
	}
	PutBytes(b)

	b2 := GetBytesSized(50)
	if len(b2) != 50 {
		t.Errorf("GetBytesSized(50) length = %d, want 50", len(b2))
	}
	PutBytes(b2)
}

func TestRowCapacity(t *testing.T) {
	if got := RowCapacity(100, true); got != NarrowRowSize {
		t.Errorf("RowCapacity(100, total=true) = %d, want %d", got, NarrowRowSize)
	}
	if got := RowCapacity(1000, false); got != 2000 {
		t.Errorf("RowCapacity(1000, total=false) = %d, want 2000", got)
	}
	if got := RowCapacity(0, false); got != 0 {
		t.Errorf("RowCapacity(0, total=false) = %d, want 0", got)
	}
}

func TestBufferBuilder(t *testing.T) {
	b := NewBufferBuilder(64)
	defer b.Release()

	b.WriteByte(0x01)
	b.WriteUint(12345)
	b.WriteInt(-7)
	b.WriteString("hello")
	b.Write([]byte{0xFF, 0xFE})

	result := b.Bytes()
	expected := []byte{0x01}
	expected = append(expected, "12345"...)
	expected = append(expected, "-7"...)
	expected = append(expected, "hello"...)
	expected = append(expected, 0xFF, 0xFE)

	if len(result) != len(expected) {
		t.Fatalf("Buffer length = %d, want %d", len(result), len(expected))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("result[%d] = %02x, want %02x", i, result[i], expected[i])
		}
	}
}

func TestBufferBuilder_Len(t *testing.T) {
	b := NewBufferBuilder(32)
	defer b.Release()

	if b.Len() != 0 {
		t.Errorf("Initial Len() = %d, want 0", b.Len())
	}

	b.WriteString("test")
	if b.Len() != 4 {
		t.Errorf("After write Len() = %d, want 4", b.Len())
	}
}

func TestBufferBuilder_Reset(t *testing.T) {
	b := NewBufferBuilder(32)
	defer b.Release()

	b.WriteString("test data")
	b.Reset()

	if b.Len() != 0 {
		t.Errorf("After Reset() Len() = %d, want 0", b.Len())
	}

	b.WriteString("new data")
	if string(b.Bytes()) != "new data" {
		t.Errorf("After Reset and write, got %q, want %q", string(b.Bytes()), "new data")
	}
}

func TestBytePool_Concurrent(t *testing.T) {
	pool := NewBytePool()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b := pool.Get(64)
				b = append(b, "concurrent test data"...)
				pool.Put(b)
			}
		}()
	}

	wg.Wait()
}

func BenchmarkBytePool_Get(b *testing.B) {
	pool := NewBytePool()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf := pool.Get(128)
		pool.Put(buf)
	}
}

func BenchmarkBytePool_GetWithoutPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = make([]byte, 0, 128)
	}
}

func BenchmarkBufferBuilder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bb := NewBufferBuilder(64)
		bb.WriteByte(0x01)
		bb.WriteUint(12345)
		bb.WriteString("test")
		_ = bb.Bytes()
		bb.Release()
	}
}

func BenchmarkBufferBuilder_WithoutPool(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := make([]byte, 0, 64)
		buf = append(buf, 0x01)
		buf = append(buf, "12345"...)
		buf = append(buf, "test"...)
		_ = buf
	}
}
