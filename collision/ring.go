package collision

import "math"

// Circle returns every body whose silhouette overlaps the disk at
// center with the given radius. Equivalent to Ring(center, 0, radius).
func (idx *CollisionIndex) Circle(centerX, centerY, radius float64) []Body {
	return idx.Ring(centerX, centerY, 0, radius)
}

// Ring returns every body whose silhouette overlaps the annulus
// [inner, outer] centered at (centerX, centerY). The returned slice is
// a view into a buffer owned by the index; it is overwritten by the
// next Ring/Circle call and invalidated by the next Clear.
func (idx *CollisionIndex) Ring(centerX, centerY, inner, outer float64) []Body {
	if !idx.finalized {
		panic("collision: Ring called before Finalize")
	}

	minX := idx.worldToGrid(centerX - outer)
	maxX := idx.worldToGrid(centerX + outer)
	minY := idx.worldToGrid(centerY - outer)
	maxY := idx.worldToGrid(centerY + outer)

	idx.nextEpoch()
	idx.result = idx.result[:0]

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for _, e := range idx.findBin(idx.bin(x, y)) {
				if e.gx != x || e.gy != y {
					continue // wrap-alias from another tile
				}
				if idx.markSeen(e.denseIndex) {
					continue
				}

				bx, by := e.body.Position()
				dist := math.Hypot(centerX-bx, centerY-by)
				if inner <= dist && dist <= outer {
					idx.result = append(idx.result, e.body)
					continue
				}
				if e.body.Mask().WithinRing(centerX-bx, centerY-by, e.body.Facing(), inner, outer) {
					idx.result = append(idx.result, e.body)
				}
			}
		}
	}

	return idx.result
}
