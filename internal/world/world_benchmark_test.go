package world

import (
	"testing"
)

func BenchmarkGet(b *testing.B) {
	g := NewDefault()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Get(i%21, (i*7)%64, (i*31)%64)
	}
}

// Snapshots clone the whole grid after every edit.
func BenchmarkClone(b *testing.B) {
	g := NewDefault()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

func BenchmarkEncode(b *testing.B) {
	g := NewGenerator(7).Generate(DefaultLayers, DefaultRows, DefaultCols)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Encode(g)
	}
}

func BenchmarkGenerate(b *testing.B) {
	gen := NewGenerator(42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Generate(DefaultLayers, DefaultRows, DefaultCols)
	}
}
