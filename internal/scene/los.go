package scene

import "math"

// HasLineOfSight reports whether the segment (ax,ay)->(bx,by), in tile units,
// crosses no wall cell other than the one holding the end point. A wall you
// look straight at is visible; whatever is behind it is not.
func (g Grid) HasLineOfSight(ax, ay, bx, by float64) bool {
	x0, x1 := int(math.Floor(math.Min(ax, bx))), int(math.Floor(math.Max(ax, bx)))
	y0, y1 := int(math.Floor(math.Min(ay, by))), int(math.Floor(math.Max(ay, by)))
	ex, ey := int(math.Floor(bx)), int(math.Floor(by))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if (x == ex && y == ey) || g.At(x, y) != CellWall {
				continue
			}
			if rayIntersectsAABB(ax, ay, bx, by, float64(x), float64(y), float64(x+1), float64(y+1)) {
				return false
			}
		}
	}
	return true
}

// rayIntersectsAABB checks if the segment (ox,oy)->(ex,ey) touches the box
// (minX,minY)-(maxX,maxY). Slab test; edges count as hits.
func rayIntersectsAABB(ox, oy, ex, ey, minX, minY, maxX, maxY float64) bool {
	tMin, tMax := 0.0, 1.0
	for _, s := range [2][4]float64{
		{ox, ex - ox, minX, maxX},
		{oy, ey - oy, minY, maxY},
	} {
		o, d, lo, hi := s[0], s[1], s[2], s[3]
		if math.Abs(d) < 1e-12 {
			if o < lo || o > hi {
				return false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}
