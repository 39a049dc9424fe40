package collision

import "math"

// lineBest tracks the closest hit found so far during a Line query.
type lineBest struct {
	dist float64
	body Body
}

// Line finds the first body intersected by the directed segment
// from->to, honoring the friend/foe predicate against queryGov (skip
// unless the candidate is target, either government is nil, or the two
// governments are enemies). closestHit, if non-nil, caps the search and
// is updated to a strictly closer fraction on a hit; it is left
// unchanged when no body is returned.
func (idx *CollisionIndex) Line(fromX, fromY, toX, toY float64, closestHit *float64, queryGov Government, target Body) Body {
	if !idx.finalized {
		panic("collision: Line called before Finalize")
	}

	xi, yi := int64(fromX), int64(fromY)
	exi, eyi := int64(toX), int64(toY)
	gx, gy := xi>>idx.shift, yi>>idx.shift
	endGx, endGy := exi>>idx.shift, eyi>>idx.shift

	best := lineBest{dist: 1.0, body: nil}
	if closestHit != nil {
		best.dist = *closestHit
	}

	scan := func(cellGx, cellGy int64, dedupe bool) {
		for _, e := range idx.findBin(idx.bin(cellGx, cellGy)) {
			if e.gx != cellGx || e.gy != cellGy {
				continue // wrap-alias from another tile
			}
			if dedupe && idx.markSeen(e.denseIndex) {
				continue
			}
			if !friendOrFoe(e.body, target, queryGov) {
				continue
			}
			bx, by := e.body.Position()
			facing := e.body.Facing()
			frac := e.body.Mask().Collide(fromX-bx, fromY-by, toX-fromX, toY-fromY, facing)
			if frac < best.dist {
				best.dist = frac
				best.body = e.body
			}
		}
	}

	if gx == endGx && gy == endGy {
		// Single-cell fast path: equivalent to an exhaustive scan of
		// this bin alone.
		scan(gx, gy, false)
		return idx.finishLine(&best, closestHit)
	}

	if length := math.Hypot(toX-fromX, toY-fromY); length > MaxVelocity {
		scale := UsedMaxVelocity / length
		clampedX := fromX + (toX-fromX)*scale
		clampedY := fromY + (toY-fromY)*scale
		idx.logger.WarnVelocityOverflow(fromX, fromY, toX, toY, UsedMaxVelocity)
		return idx.Line(fromX, fromY, clampedX, clampedY, closestHit, queryGov, target)
	}

	mx := absInt64(exi - xi)
	my := absInt64(eyi - yi)
	stepX := signTreatingZeroAsPositive(exi - xi)
	stepY := signTreatingZeroAsPositive(eyi - yi)

	scale := maxInt64(mx, 1) * maxInt64(my, 1)
	fullScale := idx.cellSize * scale

	rx := scale * (xi & idx.cellMask)
	ry := scale * (yi & idx.cellMask)
	if stepX > 0 {
		rx = fullScale - rx
	}
	if stepY > 0 {
		ry = fullScale - ry
	}

	idx.nextEpoch()
	for {
		scan(gx, gy, true)
		if best.body != nil || (gx == endGx && gy == endGy) {
			break
		}

		diff := rx*my - ry*mx
		switch {
		case diff == 0:
			rx = fullScale
			ry = fullScale
			// Stepping both axes would overshoot the end cell on the
			// axis that already matches it.
			if gx == endGx || gy == endGy {
				return idx.finishLine(&best, closestHit)
			}
			gx += stepX
			gy += stepY
		case diff < 0:
			ry -= my * (rx / mx)
			rx = fullScale
			gx += stepX
		default:
			rx -= mx * (ry / my)
			ry = fullScale
			gy += stepY
		}
	}

	return idx.finishLine(&best, closestHit)
}

// LineProjectile is the convenience overload that builds the query
// segment from p.Position() to p.Position()+p.Velocity().
func (idx *CollisionIndex) LineProjectile(p Projectile, closestHit *float64) Body {
	fromX, fromY := p.Position()
	vx, vy := p.Velocity()
	return idx.Line(fromX, fromY, fromX+vx, fromY+vy, closestHit, p.GetGovernment(), p.Target())
}

func (idx *CollisionIndex) finishLine(best *lineBest, closestHit *float64) Body {
	if best.dist >= 1.0 {
		return nil
	}
	if closestHit != nil {
		*closestHit = best.dist
	}
	return best.body
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// signTreatingZeroAsPositive returns -1 for negative v, and +1 for zero
// or positive v, matching spec.md's "zero treated as +1" step direction.
func signTreatingZeroAsPositive(v int64) int64 {
	if v < 0 {
		return -1
	}
	return 1
}
