package collision_test

import (
	"testing"

	"github.com/lixenwraith/voidfront/collision"
	"github.com/lixenwraith/voidfront/worldgen"
)

// This file lives in the external collision_test package (not collision)
// specifically so it can import worldgen, which itself imports collision —
// an internal test file sharing package collision with worldgen as an
// import would be a real import cycle, not just an apparent one.

func populateFromField(idx *collision.CollisionIndex, bodies []collision.Body) {
	for _, b := range bodies {
		idx.Add(b)
	}
	idx.Finalize()
}

func BenchmarkFinalize_PoissonField(b *testing.B) {
	gov := worldgen.NewFaction("neutral")
	ships := worldgen.PoissonField(1, 16384, 16384, 64, 8, gov)

	idx := collision.New(256, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Clear(int64(i))
		for _, body := range ships {
			idx.Add(body)
		}
		idx.Finalize()
	}
}

func BenchmarkCircle_PoissonField(b *testing.B) {
	gov := worldgen.NewFaction("neutral")
	ships := worldgen.PoissonField(2, 16384, 16384, 64, 8, gov)

	idx := collision.New(256, 64)
	populateFromField(idx, ships)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Circle(8000, 8000, 500)
	}
}

func BenchmarkLine_ClusterField(b *testing.B) {
	gov := worldgen.NewFaction("asteroids")
	ships := worldgen.ClusterField(3, 4000, 16384, 16384, 12, gov)

	idx := collision.New(256, 64)
	populateFromField(idx, ships)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		closest := 1.0
		idx.Line(0, 0, 16000, 16000, &closest, nil, nil)
	}
}
