package worldgen

import (
	"github.com/kelindar/noise"

	"github.com/lixenwraith/voidfront/collision"
	"github.com/lixenwraith/voidfront/core"
)

// PoissonField places non-overlapping ships across a width x height
// world region using a gap-bounded sparse sequence, so no two bodies'
// bounding radii can touch when gap >= 2*radius. Grounded on
// kelindar-noise/sparse.go's Sparse2.
func PoissonField(seed uint32, width, height, gap int, radius float64, gov *Faction) []collision.Body {
	var bodies []collision.Body
	id := core.Entity(1)
	for p := range noise.Sparse2(seed, width, height, gap) {
		bodies = append(bodies, NewShip(id, float64(p[0]), float64(p[1]), radius, gov))
		id++
	}
	return bodies
}

// ClusterField scatters count ships over [0,spanX)x[0,spanY) with
// density shaped by 2D simplex noise, producing asteroid-belt-like
// clustering instead of a uniform spread. Grounded on
// kelindar-noise/simplex.go's NewSimplex/Eval.
func ClusterField(seed uint32, count int, spanX, spanY, radius float64, gov *Faction) []collision.Body {
	simplex := noise.NewSimplex(seed)
	rng := newSplitMix64(uint64(seed) | 1)

	bodies := make([]collision.Body, 0, count)
	id := core.Entity(1)
	const freq = 0.02

	for len(bodies) < count {
		x := rng.float64() * spanX
		y := rng.float64() * spanY

		density := simplex.Eval(float32(x*freq), float32(y*freq))
		// Eval returns roughly [-1, 1]; bias toward positive lobes so
		// clusters form instead of a uniform fill.
		threshold := rng.float64()*2 - 1
		if float64(density) < threshold {
			continue
		}

		bodies = append(bodies, NewShip(id, x, y, radius, gov))
		id++
	}
	return bodies
}

// splitMix64 is a tiny, dependency-free PRNG used only to pick
// candidate coordinates for ClusterField's rejection sampling; the
// spatial structure itself comes from the simplex density field above.
type splitMix64 struct {
	state uint64
}

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{state: seed}
}

func (r *splitMix64) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func (r *splitMix64) float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}
