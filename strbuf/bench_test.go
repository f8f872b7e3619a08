package strbuf_test

import (
	"testing"

	"github.com/marcodamonte/memlayout/strbuf"
)

// BenchmarkAppendReserved measures appends that fit inside a pre-reserved
// capacity: one allocation up front, no reallocation per append.
func BenchmarkAppendReserved(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := strbuf.WithCapacity(64)
		for j := 0; j < 8; j++ {
			buf.AppendString("12345678")
		}
		buf.Release()
	}
}

// BenchmarkAppendGrowing measures the same appends starting from zero
// capacity, paying for every growth step.
func BenchmarkAppendGrowing(b *testing.B) {
	for i := 0; i < b.N; i++ {
		buf := strbuf.New()
		for j := 0; j < 8; j++ {
			buf.AppendString("12345678")
		}
		buf.Release()
	}
}

// BenchmarkDecodeLossyASCII measures the fast path: well-formed input is a
// single validity scan plus one copy.
func BenchmarkDecodeLossyASCII(b *testing.B) {
	raw := []byte("a perfectly ordinary ascii sentence for the fast path")
	var sink string
	for i := 0; i < b.N; i++ {
		sink = strbuf.DecodeLossy(raw)
	}
	_ = sink
}

// BenchmarkDecodeLossyCorrupt measures the rune-by-rune replacement path.
func BenchmarkDecodeLossyCorrupt(b *testing.B) {
	raw := []byte("cañón astur, cañón astur, cañón astur")
	raw[2] = 0xFF
	var sink string
	for i := 0; i < b.N; i++ {
		sink = strbuf.DecodeLossy(raw)
	}
	_ = sink
}
