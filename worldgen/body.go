// Package worldgen procedurally populates collision.Body fixtures for
// tests, benchmarks, and the collision-sandbox demo.
package worldgen

import (
	"math"

	"github.com/lixenwraith/voidfront/collision"
	"github.com/lixenwraith/voidfront/core"
)

// Faction is a minimal collision.Government: a named side with an
// explicit enemy set. Grounded on component/combat.go's CombatComponent
// owner/enmity bookkeeping, trimmed to what collision.Government needs.
type Faction struct {
	Name    string
	enemies map[*Faction]struct{}
}

// NewFaction creates a faction with no enemies.
func NewFaction(name string) *Faction {
	return &Faction{Name: name, enemies: make(map[*Faction]struct{})}
}

// SetEnemy marks a and b as mutually hostile.
func SetEnemy(a, b *Faction) {
	a.enemies[b] = struct{}{}
	b.enemies[a] = struct{}{}
}

// IsEnemy implements collision.Government.
func (f *Faction) IsEnemy(other collision.Government) bool {
	o, ok := other.(*Faction)
	if !ok || o == nil {
		return false
	}
	_, hostile := f.enemies[o]
	return hostile
}

// CircleMask is the simplest collision.Mask: a disk of the given radius
// centered on the body's anchor, facing-independent.
type CircleMask struct {
	Radius float64
}

// Collide implements collision.Mask via ray/circle intersection.
// offsetX, offsetY is the ray origin relative to the mask's anchor;
// dirX, dirY is the full displacement of the query segment.
func (m CircleMask) Collide(offsetX, offsetY, dirX, dirY, _ float64) float64 {
	a := dirX*dirX + dirY*dirY
	if a == 0 {
		if offsetX*offsetX+offsetY*offsetY <= m.Radius*m.Radius {
			return 0
		}
		return 2
	}
	b := 2 * (offsetX*dirX + offsetY*dirY)
	c := offsetX*offsetX + offsetY*offsetY - m.Radius*m.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 2
	}
	sqrtDisc := math.Sqrt(disc)
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)

	if t0 >= 0 && t0 <= 1 {
		return t0
	}
	if t1 >= 0 && t1 <= 1 {
		return t1
	}
	return 2
}

// WithinRing implements collision.Mask for a circular silhouette: true
// iff the disk overlaps the annulus, i.e. its farthest point is at least
// inner and its nearest point at most outer from the ring's center.
func (m CircleMask) WithinRing(offsetX, offsetY, _, inner, outer float64) bool {
	dist := math.Hypot(offsetX, offsetY)
	return dist+m.Radius >= inner && dist-m.Radius <= outer
}

// Ship is a minimal collision.Body: a circular silhouette with a
// position, facing, and optional faction.
type Ship struct {
	ID     core.Entity
	X, Y   float64
	R      float64
	Face   float64
	Gov    *Faction
	MaskOf collision.Mask
}

// NewShip creates a Ship with a CircleMask matching its radius.
func NewShip(id core.Entity, x, y, r float64, gov *Faction) *Ship {
	return &Ship{ID: id, X: x, Y: y, R: r, Gov: gov, MaskOf: CircleMask{Radius: r}}
}

func (s *Ship) Position() (float64, float64) { return s.X, s.Y }
func (s *Ship) Radius() float64              { return s.R }
func (s *Ship) Facing() float64              { return s.Face }
func (s *Ship) Mask() collision.Mask         { return s.MaskOf }

// Government returns nil for an unaffiliated ship, matching the
// friend/foe predicate's "either side has no government" rule.
func (s *Ship) Government() collision.Government {
	if s.Gov == nil {
		return nil
	}
	return s.Gov
}
