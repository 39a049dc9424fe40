// Package collision implements the broad-phase spatial collision index:
// a toroidally-wrapped uniform grid rebuilt every simulation tick by
// counting sort, queried by directed line segment, disk, and annulus.
package collision

// Body is the narrow contract the index needs from a positioned,
// collidable game object. Bodies are owned by the caller; the index
// only ever holds non-owning references valid between Clear and the
// next Clear.
type Body interface {
	// Position returns the body's world-space center.
	Position() (x, y float64)
	// Radius returns the body's bounding (broad-phase) radius.
	Radius() float64
	// Facing returns the body's orientation in radians.
	Facing() float64
	// Government returns the body's government handle, or nil if the
	// body is unaffiliated.
	Government() Government
	// Mask returns the body's oriented collision mask.
	Mask() Mask
}

// Mask is an oriented silhouette supporting precise-phase ray and ring
// tests in the body's local frame.
type Mask interface {
	// Collide returns the fraction along (dirX, dirY) at which the ray
	// starting at offset (offsetX, offsetY) from the mask's anchor,
	// rotated into the mask's local frame by facing, first enters the
	// mask. A value in [0,1] is a hit; any value >= 1 is a miss.
	Collide(offsetX, offsetY, dirX, dirY, facing float64) float64
	// WithinRing reports whether the mask's silhouette, oriented by
	// facing, overlaps the annulus [inner, outer] centered at an offset
	// of (offsetX, offsetY) from the mask's anchor.
	WithinRing(offsetX, offsetY, facing, inner, outer float64) bool
}

// Government identifies a body's allegiance. Equality is Go's native
// interface identity; enmity is consulted through IsEnemy.
type Government interface {
	// IsEnemy reports whether other is hostile to this government.
	IsEnemy(other Government) bool
}

// Projectile is the narrow contract consumed by the LineProjectile
// convenience overload, which builds the query segment from Position to
// Position+Velocity.
type Projectile interface {
	Position() (x, y float64)
	Velocity() (vx, vy float64)
	GetGovernment() Government
	Target() Body
}

// Logger is the single entry point for the one-shot velocity-overflow
// warning emitted by Line. clampedLength is the length the segment was
// reduced to.
type Logger interface {
	WarnVelocityOverflow(fromX, fromY, toX, toY, clampedLength float64)
}
