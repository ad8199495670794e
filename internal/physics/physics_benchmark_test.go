package physics

import (
	"testing"

	"voxcast/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func BenchmarkCanOccupy(b *testing.B) {
	w := world.NewDefault()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CanOccupy(w, float32(i%64)+0.5, 32.5, 1.7)
	}
}

func BenchmarkMarch(b *testing.B) {
	w := world.NewDefault()
	for y := 0; y < 64; y++ {
		for z := 1; z < 6; z++ {
			w.Set(z, y, 40, world.Solid)
		}
	}
	start := mgl32.Vec3{32, 32, 1.7}
	dir := mgl32.Vec3{1, -0.2, 0}.Normalize()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = March(start, dir, DefaultStepSize, DefaultMaxDistance, w)
	}
}
