package worldgen

import (
	"testing"

	"github.com/lixenwraith/voidfront/collision"
)

func buildIndex(bodies []collision.Body) *collision.CollisionIndex {
	idx := collision.New(256, 64)
	for _, b := range bodies {
		idx.Add(b)
	}
	idx.Finalize()
	return idx
}

func TestPoissonField_EveryBodyFoundByCircle(t *testing.T) {
	gov := NewFaction("neutral")
	bodies := PoissonField(7, 4096, 4096, 64, 8, gov)
	if len(bodies) == 0 {
		t.Fatal("expected PoissonField to place at least one body")
	}

	idx := buildIndex(bodies)
	for _, b := range bodies {
		x, y := b.Position()
		hits := idx.Circle(x, y, b.Radius())
		found := false
		for _, h := range hits {
			if h == b {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("body at (%v,%v) r=%v not found by Circle covering its own footprint", x, y, b.Radius())
		}
	}
}

func TestPoissonField_NonOverlapping(t *testing.T) {
	gov := NewFaction("neutral")
	radius := 8.0
	bodies := PoissonField(11, 2048, 2048, 32, radius, gov)

	idx := buildIndex(bodies)
	for _, b := range bodies {
		x, y := b.Position()
		hits := idx.Circle(x, y, radius*2)
		for _, h := range hits {
			if h == b {
				continue
			}
			hx, hy := h.Position()
			dx, dy := x-hx, y-hy
			distSq := dx*dx + dy*dy
			minSep := radius + h.Radius()
			if distSq < minSep*minSep {
				t.Fatalf("bodies at (%v,%v) and (%v,%v) overlap: dist=%v minSep=%v", x, y, hx, hy, distSq, minSep)
			}
		}
	}
}

func TestClusterField_EveryBodyFoundByCircle(t *testing.T) {
	gov := NewFaction("asteroids")
	bodies := ClusterField(13, 200, 4096, 4096, 10, gov)
	if len(bodies) != 200 {
		t.Fatalf("expected 200 bodies, got %d", len(bodies))
	}

	idx := buildIndex(bodies)
	for _, b := range bodies {
		x, y := b.Position()
		hits := idx.Circle(x, y, b.Radius())
		found := false
		for _, h := range hits {
			if h == b {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("body at (%v,%v) not found by Circle covering its own footprint", x, y)
		}
	}
}

func TestFaction_IsEnemy(t *testing.T) {
	a := NewFaction("player")
	b := NewFaction("pirate")
	c := NewFaction("ally")

	if a.IsEnemy(b) {
		t.Fatal("expected no enmity before SetEnemy")
	}
	SetEnemy(a, b)
	if !a.IsEnemy(b) || !b.IsEnemy(a) {
		t.Fatal("expected mutual enmity after SetEnemy")
	}
	if a.IsEnemy(c) {
		t.Fatal("expected unrelated faction to remain non-hostile")
	}
}
